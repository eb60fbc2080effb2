package i18n

import (
	"embed"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

const (
	MsgStkPushSent        = "StkPushSent"
	MsgPaymentFailed      = "PaymentFailed"
	MsgGatewayUnreachable = "GatewayUnreachable"
	MsgConfirmPurchase    = "ConfirmPurchase"
	MsgPhonePrompt        = "PhonePrompt"
	MsgLoadMorePackages   = "LoadMorePackages"
	MsgShowLessPackages   = "ShowLessPackages"
)

//go:embed translations/active.*.toml
var localeFS embed.FS
var bundle *i18n.Bundle

var supported = []language.Tag{language.English, language.Swahili}
var matcher = language.NewMatcher(supported)

func init() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.LoadMessageFileFS(localeFS, "translations/active.en.toml")
	bundle.LoadMessageFileFS(localeFS, "translations/active.sw.toml")
}

type C = i18n.LocalizeConfig

func T(lang string, c C) string {
	s, _ := i18n.NewLocalizer(bundle, lang).Localize(&c)
	return s
}

// Language picks the best supported language for an Accept-Language header.
// English is used when nothing matches.
func Language(acceptLanguage string) string {
	tags, _, _ := language.ParseAcceptLanguage(acceptLanguage)
	tag, _, _ := matcher.Match(tags...)
	base, _ := tag.Base()
	return base.String()
}
