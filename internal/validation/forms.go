package validation

import (
	"time"

	"bizmeet/internal/domain"
)

// Form validation messages, one per field rule.
const (
	msgCompanyNameRequired = "Company name is required"
	msgCompanyNameTooLong  = "Company name must be less than 255 characters"
	msgRegNumberRequired   = "Registration number is required"
	msgRegNumberTooLong    = "Registration number must be less than 100 characters"
	msgRegNumberFormat     = "Registration number must contain only uppercase letters, numbers, and hyphens"
	msgCategoryRequired    = "Business category is required"
	msgCategoryTooLong     = "Business category must be less than 255 characters"

	msgNameRequired  = "Name is required"
	msgNameTooLong   = "Name must be less than 255 characters"
	msgPhoneRequired = "Phone number is required"
	msgPhoneTooLong  = "Phone number must be less than 20 characters"
	msgPhoneFormat   = "Please enter a valid phone number"
	msgEmailRequired = "Email is required"
	msgEmailTooLong  = "Email must be less than 255 characters"
	msgEmailFormat   = "Please enter a valid email address"

	msgEventNameRequired = "Event name is required"
	msgEventNameTooLong  = "Event name must be less than 255 characters"
	msgEventDateRequired = "Event date is required"
	msgEventDatePast     = "Event date must be today or in the future"

	msgInvalidEventID        = "Invalid event ID"
	msgInvalidEntrepreneurID = "Invalid entrepreneur ID"
	msgInvalidParticipantID  = "Invalid participant ID"
	msgInvalidTimeSlot       = "Invalid time slot"
)

// Entrepreneur validates an entrepreneur form. On success the draft has
// is_active defaulted to true when the input omitted it.
func Entrepreneur(in domain.EntrepreneurInput) (draft *domain.EntrepreneurDraft, errs Errors) {
	errs = Errors{}
	defer guard(&errs)

	checkString(errs, "company_name", in.CompanyName,
		required(msgCompanyNameRequired),
		maxLen(255, msgCompanyNameTooLong),
	)
	checkString(errs, "registration_number", in.RegistrationNumber,
		required(msgRegNumberRequired),
		maxLen(100, msgRegNumberTooLong),
		match(registrationNumberRegexp, msgRegNumberFormat),
	)
	checkString(errs, "business_category", in.BusinessCategory,
		required(msgCategoryRequired),
		maxLen(255, msgCategoryTooLong),
	)
	if len(errs) > 0 {
		return nil, errs
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	return &domain.EntrepreneurDraft{
		CompanyName:        in.CompanyName,
		RegistrationNumber: in.RegistrationNumber,
		BusinessCategory:   in.BusinessCategory,
		IsActive:           isActive,
	}, nil
}

// Participant validates a participant form.
func Participant(in domain.ParticipantInput) (draft *domain.ParticipantDraft, errs Errors) {
	errs = Errors{}
	defer guard(&errs)

	checkString(errs, "name", in.Name,
		required(msgNameRequired),
		maxLen(255, msgNameTooLong),
	)
	checkString(errs, "phone", in.Phone,
		required(msgPhoneRequired),
		maxLen(20, msgPhoneTooLong),
		match(phoneRegexp, msgPhoneFormat),
	)
	checkString(errs, "email", in.Email,
		required(msgEmailRequired),
		maxLen(255, msgEmailTooLong),
		match(emailRegexp, msgEmailFormat),
	)
	if len(errs) > 0 {
		return nil, errs
	}

	return &domain.ParticipantDraft{
		Name:  in.Name,
		Phone: in.Phone,
		Email: in.Email,
	}, nil
}

// Event validates an event form. The event date must parse and fall on
// today's calendar date or later; the comparison ignores time-of-day.
func Event(in domain.EventInput) (draft *domain.EventDraft, errs Errors) {
	return eventAt(in, time.Now())
}

// eventAt is Event with an injectable clock for tests.
func eventAt(in domain.EventInput, now time.Time) (draft *domain.EventDraft, errs Errors) {
	errs = Errors{}
	defer guard(&errs)

	checkString(errs, "name", in.Name,
		required(msgEventNameRequired),
		maxLen(255, msgEventNameTooLong),
	)

	var eventDate time.Time
	if in.EventDate == "" {
		errs.add("event_date", msgEventDateRequired)
	} else {
		day, ok := dateOnOrAfterToday(in.EventDate, now)
		if !ok {
			errs.add("event_date", msgEventDatePast)
		}
		eventDate = day
	}
	if len(errs) > 0 {
		return nil, errs
	}

	return &domain.EventDraft{
		Name:      in.Name,
		EventDate: eventDate,
	}, nil
}

// Booking validates a meeting booking form. Reference IDs must be
// syntactically valid UUIDs; referential existence is the repository's
// concern. The time slot must be one of the five enumerated windows.
func Booking(in domain.BookingInput) (draft *domain.BookingDraft, errs Errors) {
	errs = Errors{}
	defer guard(&errs)

	checkUUID(errs, "event_id", in.EventID, msgInvalidEventID)
	checkUUID(errs, "entrepreneur_id", in.EntrepreneurID, msgInvalidEntrepreneurID)
	checkUUID(errs, "participant_id", in.ParticipantID, msgInvalidParticipantID)

	slot := domain.TimeSlot(in.TimeSlot)
	if !slot.IsValid() {
		errs.add("time_slot", msgInvalidTimeSlot)
	}
	if len(errs) > 0 {
		return nil, errs
	}

	return &domain.BookingDraft{
		EventID:        in.EventID,
		EntrepreneurID: in.EntrepreneurID,
		ParticipantID:  in.ParticipantID,
		TimeSlot:       slot,
	}, nil
}

// EventEntrepreneur validates an event-entrepreneur assignment form.
func EventEntrepreneur(in domain.EventEntrepreneurInput) (draft *domain.EventEntrepreneurDraft, errs Errors) {
	errs = Errors{}
	defer guard(&errs)

	checkUUID(errs, "event_id", in.EventID, msgInvalidEventID)
	checkUUID(errs, "entrepreneur_id", in.EntrepreneurID, msgInvalidEntrepreneurID)
	if len(errs) > 0 {
		return nil, errs
	}

	return &domain.EventEntrepreneurDraft{
		EventID:        in.EventID,
		EntrepreneurID: in.EntrepreneurID,
	}, nil
}
