package naming

// ============================================================================
// Translation Key Constants
// ============================================================================

// TranslationKeySeparator separates the template id from the field name in
// raw locale keys ("<tpl> ShortName").
const TranslationKeySeparator = " "

// TranslationFieldShortName is the only locale field kept for display.
const TranslationFieldShortName = "ShortName"

// TranslationKeyParts is the expected number of parts of a raw locale key.
const TranslationKeyParts = 2

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgTranslationsLoaded = "Translations loaded"
	LogFieldCount            = "count"
)
