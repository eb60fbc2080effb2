package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestT(t *testing.T) {
	tests := []struct {
		name string
		lang string
		c    C
		want string
	}{
		{
			name: "success en",
			lang: "en",
			c:    C{MessageID: MsgStkPushSent},
			want: "STK Push sent to your phone. Complete the payment to activate.",
		},
		{
			name: "failure en",
			lang: "en",
			c:    C{MessageID: MsgPaymentFailed},
			want: "Payment failed. Try again.",
		},
		{
			name: "confirm en",
			lang: "en",
			c:    C{MessageID: MsgConfirmPurchase, TemplateData: map[string]string{"Price": "Ksh 20", "Duration": "1 Day"}},
			want: "Proceed to pay Ksh 20 for 1 Day?",
		},
		{
			name: "confirm sw",
			lang: "sw",
			c:    C{MessageID: MsgConfirmPurchase, TemplateData: map[string]string{"Price": "Ksh 20", "Duration": "1 Day"}},
			want: "Endelea kulipa Ksh 20 kwa 1 Day?",
		},
		{
			name: "unknown language falls back to en",
			lang: "fr",
			c:    C{MessageID: MsgLoadMorePackages},
			want: "Load More Packages",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, T(tt.lang, tt.c))
		})
	}
}

func TestLanguage(t *testing.T) {
	require.Equal(t, "en", Language(""))
	require.Equal(t, "en", Language("fr-FR,fr;q=0.9"))
	require.Equal(t, "sw", Language("sw-KE,sw;q=0.9,en;q=0.8"))
	require.Equal(t, "en", Language("en-GB"))
}
