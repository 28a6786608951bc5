package booking

import "jalusi/utils"

const (
	msgMissingFields  = "Please fill in all required fields."
	msgUnknownService = "Please select a valid service."
	msgUnqualified    = "%s does not perform %s. Please choose another specialist."
	msgBadDate        = "Please choose a valid date."
	msgBadTime        = "Please choose one of the available time slots."
	msgClosedDay      = "We are closed on %s. Please choose another date."
)

func missingFields() error {
	return utils.NewValidationError(msgMissingFields)
}
