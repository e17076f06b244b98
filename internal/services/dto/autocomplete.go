package dto

// AutocompleteOption is the minimal id/label pair the admin UI renders
// in selects.
type AutocompleteOption struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
}

// AutocompleteResponse carries one key per requested field. Fields that
// were not requested are omitted from the payload entirely.
type AutocompleteResponse struct {
	Users        []AutocompleteOption `json:"users,omitempty"`
	Experts      []AutocompleteOption `json:"experts,omitempty"`
	Profiles     []AutocompleteOption `json:"profiles,omitempty"`
	PaymentTypes []AutocompleteOption `json:"paymentTypes,omitempty"`
	Trainings    []AutocompleteOption `json:"trainings,omitempty"`
	Modules      []AutocompleteOption `json:"modules,omitempty"`
	SubModules   []AutocompleteOption `json:"subModules,omitempty"`
}
