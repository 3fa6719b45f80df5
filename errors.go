package argman

import "fmt"

// ParseError is the structured error raised by declaration and parse
// failures. It carries the message-table key which produced it and wraps one
// of the sentinel errors declared in the types package, so callers can switch
// on errors.Is or on Key.
type ParseError struct {
	Key string
	msg string
	err error
}

func (e *ParseError) Error() string {
	return e.msg
}

func (e *ParseError) Unwrap() error {
	return e.err
}

// Message-table keys. The table maps each key to a fmt template; the verbs
// each template expects are documented next to it in defaultErrors. Callers
// may replace individual templates with WithErrorMessages.
const (
	errNoShortOrLong          = "no_short_or_long"
	errShortNotOneChar        = "short_not_one_char"
	errLongTooShort           = "long_less_than_two_chars"
	errPosDefaultMismatch     = "positional_default_type_mismatch"
	errRequiredAfterOptional  = "required_after_optional"
	errDefaultMismatch        = "optional_default_type_mismatch"
	errShortWithEqualSign     = "short_with_equal_sign"
	errUnknownShortInCluster  = "unknown_short_in_cluster"
	errShortClusterNoBool     = "short_cluster_no_bool"
	errUnknownSingleShort     = "unknown_single_short"
	errMissingValueShort      = "missing_value_short"
	errValueTypeMismatch      = "value_type_mismatch"
	errListItemTypeMismatch   = "list_item_type_mismatch"
	errUnknownLong            = "unknown_long"
	errMissingValueLong       = "missing_value_long"
	errUnknownPositional      = "unknown_positional"
	errPosTypeMismatch        = "positional_type_mismatch"
	errParseUnreachable       = "parse_unreachable"
	errMissingPosHeader       = "missing_positional_header"
	errMissingPosItem         = "missing_positional_item"
	errUnknownInConfig        = "unknown_in_config"
	errChoicesTypeMismatch    = "choices_type_mismatch"
	errDefaultNotInChoices    = "choices_default_type_mismatch"
	errNotInChoicesShort      = "value_not_in_choices_short"
	errNotInChoicesLong       = "value_not_in_choices_long"
	errDefaultFailedValidator = "default_failed_validation"
	errValidationShort        = "validation_failed_short"
	errValidationLong         = "validation_failed_long"
	errValidationShortMsg     = "validation_failed_short_message"
	errValidationLongMsg      = "validation_failed_long_message"
	errRequireArgNotFound     = "require_def_arg_not_found"
	errRequireNotProvided     = "require_not_provided"
	errConflictArgNotFound    = "conflict_def_arg_not_found"
	errConflictProvided       = "conflict_is_provided"
	errConfigRead             = "config_read_failed"
	errConfigWrite            = "config_write_failed"
	errSerializeFailed        = "serialize_failed"
)

var defaultErrors = map[string]string{
	errNoShortOrLong:          "at least one of 'short' or 'long' must be provided",
	errShortNotOneChar:        "short name must be a single character",
	errLongTooShort:           "long name must be at least 2 characters",
	errPosDefaultMismatch:     "type of default value should be the same as defined type",                               // -
	errRequiredAfterOptional:  "required positional argument cannot be defined after an optional one. All required arguments must come first.", // -
	errDefaultMismatch:        "default must be a %s",                                                                   // kind
	errShortWithEqualSign:     "short option '%s' does not support '=' syntax. Use space-separated values.",             // option
	errUnknownShortInCluster:  "unknown argument '-%s' in '-%s'",                                                        // name, cluster
	errShortClusterNoBool:     "option '-%s' requires an argument and cannot be clustered with other short options",     // name
	errUnknownSingleShort:     "unknown argument '-%s'",                                                                 // name
	errMissingValueShort:      "missing value for argument '-%s'",                                                       // name
	errValueTypeMismatch:      "value should be a %s for argument '%s'",                                                 // kind, flag
	errListItemTypeMismatch:   "value '%s' should be of type %s",                                                        // value, kind
	errUnknownLong:            "unknown argument '--%s'",                                                                // name
	errMissingValueLong:       "missing value for argument '--%s'",                                                      // name
	errUnknownPositional:      "unknown argument '%s'",                                                                  // token
	errPosTypeMismatch:        "type mismatch for '%s' (expected %s)",                                                   // name, kind
	errParseUnreachable:       "unreachable '%s'",                                                                       // token
	errMissingPosHeader:       "missing required arguments:",
	errMissingPosItem:         "    %s",                                                                                 // name
	errUnknownInConfig:        "unknown argument '%s' in file '%s'",                                                     // key, file
	errChoicesTypeMismatch:    "items in choices must be the same type as argument",
	errDefaultNotInChoices:    "default value must be in choices",
	errNotInChoicesShort:      "value for '-%s' must be in '%s'",                                                        // name, choices
	errNotInChoicesLong:       "value for '--%s' must be in '%s'",                                                       // name, choices
	errDefaultFailedValidator: "default value must pass the validation",
	errValidationShort:        "validation failed for '-%s' (%v)",                                                       // name, value
	errValidationLong:         "validation failed for '--%s' (%v)",                                                      // name, value
	errValidationShortMsg:     "validation failed for '-%s' (%v): %s",                                                   // name, value, err
	errValidationLongMsg:      "validation failed for '--%s' (%v): %s",                                                  // name, value, err
	errRequireArgNotFound:     "argument '%s' not found",                                                                // name
	errRequireNotProvided:     "missing required argument(s) for '%s': %s",                                              // name, missing
	errConflictArgNotFound:    "argument '%s' not found",                                                                // name
	errConflictProvided:       "argument '%s' cannot be used with: %s",                                                  // name, conflicts
	errConfigRead:             "cannot read config file '%s': %v",                                                       // file, err
	errConfigWrite:            "failed to write config file '%s': %v",                                                   // file, err
	errSerializeFailed:        "cannot serialize arguments to JSON: %v",                                                 // err
}

// errf builds a ParseError from the command's message table, wrapping the
// given sentinel.
func (c *Cmd) errf(sentinel error, key string, args ...interface{}) *ParseError {
	tmpl, ok := c.errorMessages[key]
	if !ok {
		tmpl = defaultErrors[key]
	}
	return &ParseError{
		Key: key,
		msg: fmt.Sprintf(tmpl, args...),
		err: sentinel,
	}
}
