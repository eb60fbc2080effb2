package handler

import (
	"portal/internal/app/catalog"
	"portal/internal/app/dto"
	"portal/internal/app/i18n"
	"portal/internal/app/purchase"
	"portal/internal/app/session"
)

func packageResponse(p catalog.Package) dto.PackageResponse {
	return dto.PackageResponse{
		ID:       p.ID,
		Price:    p.Price.String(),
		Amount:   p.Price.Units(),
		Currency: p.Price.Currency.Code,
		Duration: p.Duration,
		Tier:     string(p.Tier),
	}
}

func catalogViewResponse(lang string, v catalog.View) dto.CatalogViewResponse {
	packages := make([]dto.PackageResponse, len(v.Packages))
	for i, p := range v.Packages {
		packages[i] = packageResponse(p)
	}

	filters := make([]string, 0, 3)
	for _, f := range catalog.Filters() {
		filters = append(filters, string(f))
	}

	response := dto.CatalogViewResponse{
		Filter:     string(v.Filter),
		Filters:    filters,
		Expanded:   v.Expanded,
		Expandable: v.Expandable,
		Total:      v.Total,
		Packages:   packages,
	}
	// the toggle only exists when there is something to expand
	if v.Expandable {
		label := i18n.MsgLoadMorePackages
		if v.Expanded {
			label = i18n.MsgShowLessPackages
		}
		response.ToggleLabel = i18n.T(lang, i18n.C{MessageID: label})
	}
	return response
}

func promptResponse(lang string, p catalog.Package) *dto.PromptResponse {
	return &dto.PromptResponse{
		Package: packageResponse(p),
		Message: i18n.T(lang, i18n.C{
			MessageID: i18n.MsgConfirmPurchase,
			TemplateData: map[string]string{
				"Price":    p.Price.String(),
				"Duration": p.Duration,
			},
		}),
		PhonePrompt: i18n.T(lang, i18n.C{MessageID: i18n.MsgPhonePrompt}),
	}
}

func sessionResponse(lang string, v session.View) dto.SessionResponse {
	response := dto.SessionResponse{
		SessionID: v.State.ID,
		Catalog:   catalogViewResponse(lang, v.Catalog),
	}
	if v.Candidate != nil {
		response.Prompt = promptResponse(lang, *v.Candidate)
	}
	return response
}

// An aborted attempt has no message: cancelling is silent.
func outcomeMessage(lang string, o purchase.Outcome) string {
	var id string
	switch {
	case o.Status == purchase.StatusSucceeded:
		id = i18n.MsgStkPushSent
	case o.Status == purchase.StatusAborted:
		return ""
	case o.Reason == purchase.ReasonUnreachable:
		id = i18n.MsgGatewayUnreachable
	default:
		id = i18n.MsgPaymentFailed
	}
	return i18n.T(lang, i18n.C{MessageID: id})
}

func outcomeResponse(lang string, o purchase.Outcome) dto.PurchaseOutcomeResponse {
	trail := make([]string, len(o.Trail))
	for i, s := range o.Trail {
		trail[i] = string(s)
	}

	response := dto.PurchaseOutcomeResponse{
		Status:  string(o.Status),
		Reason:  string(o.Reason),
		Message: outcomeMessage(lang, o),
		Trail:   trail,
	}
	if o.Request != nil {
		response.Request = &dto.STKPushRequestResponse{
			Amount:      o.Request.Amount,
			Phone:       o.Request.Phone,
			Description: o.Request.Description,
		}
	}
	return response
}
