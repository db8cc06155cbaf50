package contract

import (
	domain "trustlend-backend/internal/domain/contract"
	"trustlend-backend/internal/usecase/notify"
)

// Notification fan-out is decided here, explicitly, from the transition that
// happened. No implicit change detection: callers pass the state they just
// moved the contract into.

func creationEvents(c *domain.Contract) []notify.Event {
	link := "/contracts/" + c.ContractID
	return []notify.Event{
		{AccountID: c.LenderID, Message: "A loan contract is ready for your signature.", Link: link},
		{AccountID: c.ReceiverID, Message: "Your loan contract is ready for your signature.", Link: link},
		{AccountID: c.GuarantorID, Message: "A contract you guaranteed is ready for your signature.", Link: link},
	}
}

func transitionEvents(c *domain.Contract, to domain.Status) []notify.Event {
	link := "/contracts/" + c.ContractID
	switch to {
	case domain.StatusAwaitingDisbursal:
		return []notify.Event{
			{AccountID: c.LenderID, Message: "Contract fully signed. Please disburse the funds and confirm.", Link: link},
		}
	case domain.StatusAwaitingReceipt:
		return []notify.Event{
			{AccountID: c.ReceiverID, Message: "The lender has confirmed payment. Please confirm receipt within 24 hours.", Link: link + "/disbursal-proof"},
		}
	case domain.StatusActive:
		return []notify.Event{
			{AccountID: c.ReceiverID, Message: "Your loan is now active.", Link: link},
			{AccountID: c.LenderID, Message: "The loan is now active.", Link: link},
			{AccountID: c.GuarantorID, Message: "The loan you guaranteed is now active.", Link: link},
		}
	case domain.StatusRepaid:
		return []notify.Event{
			{AccountID: c.LenderID, Message: "The loan has been fully repaid.", Link: link},
			{AccountID: c.ReceiverID, Message: "You repaid your loan. Your TrustIndex has increased.", Link: link},
			{AccountID: c.GuarantorID, Message: "The loan you guaranteed was repaid. Your TrustIndex has increased.", Link: link},
		}
	case domain.StatusDefault:
		return []notify.Event{
			{AccountID: c.LenderID, Message: "Urgent: the loan has defaulted.", Link: link},
			{AccountID: c.ReceiverID, Message: "Your loan has defaulted. Your TrustIndex has been severely impacted.", Link: link},
			{AccountID: c.GuarantorID, Message: "The loan you guaranteed has defaulted. You are liable for 50% of the principal.", Link: link},
		}
	}
	return nil
}

// TransitionEvents is exported for the settlement engine, which performs the
// terminal transitions itself.
func TransitionEvents(c *domain.Contract, to domain.Status) []notify.Event {
	return transitionEvents(c, to)
}
