package middleware

import (
	"portal/internal/app/i18n"

	"github.com/gin-gonic/gin"
)

const languageKey = "lang"

// LanguageMiddleware stores the visitor's language, taken from Accept-Language.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(languageKey, i18n.Language(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// GetLanguage returns the language chosen by LanguageMiddleware, English otherwise.
func GetLanguage(c *gin.Context) string {
	if lang := c.GetString(languageKey); lang != "" {
		return lang
	}
	return "en"
}
