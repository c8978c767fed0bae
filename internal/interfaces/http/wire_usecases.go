package http

import (
	billingUsecases "github.com/hartlaw/hartlaw/internal/application/billing/usecases"
	caseUsecases "github.com/hartlaw/hartlaw/internal/application/legalcase/usecases"
	rateUsecases "github.com/hartlaw/hartlaw/internal/application/rate/usecases"
	reviewUsecases "github.com/hartlaw/hartlaw/internal/application/review/usecases"
	settingUsecases "github.com/hartlaw/hartlaw/internal/application/setting/usecases"
	ticketUsecases "github.com/hartlaw/hartlaw/internal/application/ticket/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Case
	createCaseUC     *caseUsecases.CreateCaseUseCase
	getCaseUC        *caseUsecases.GetCaseUseCase
	setCurrencyUC    *caseUsecases.SetCurrencyUseCase
	setContingencyUC *caseUsecases.SetContingencyUseCase
	archiveCaseUC    *caseUsecases.ArchiveCaseUseCase

	// Billing
	policyProvider   *billingUsecases.PolicyProvider
	addTimeEntryUC   *billingUsecases.AddTimeEntryUseCase
	invoiceSummaryUC *billingUsecases.InvoiceSummaryUseCase
	retainerQuoteUC  *billingUsecases.RetainerQuoteUseCase

	// Ticket
	createTicketUC  *ticketUsecases.CreateTicketUseCase
	getTicketUC     *ticketUsecases.GetTicketUseCase
	assignTicketUC  *ticketUsecases.AssignTicketUseCase
	changeStatusUC  *ticketUsecases.ChangeStatusUseCase
	linkCaseUC      *ticketUsecases.LinkCaseUseCase
	convertTicketUC *ticketUsecases.ConvertTicketUseCase

	// Setting
	getSettingsUC   *settingUsecases.GetSettingsUseCase
	updateSettingUC *settingUsecases.UpdateSettingUseCase

	// Rate & Review
	listRatesUC *rateUsecases.ListRatesUseCase
	addReviewUC *reviewUsecases.AddReviewUseCase
}
