package models

// All returns every persistence model in creation order.
func All() []interface{} {
	return []interface{}{
		&CaseModel{},
		&TicketModel{},
		&TimeEntryModel{},
		&RateModel{},
		&SettingModel{},
		&ReviewModel{},
	}
}
