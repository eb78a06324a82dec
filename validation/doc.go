// Package validation checks configuration structs using struct tags.
//
//	type Config struct {
//	    BaseURL string `mapstructure:"base_url" validate:"required,httpurl"`
//	}
//	if err := validation.Validate(cfg); err != nil {
//	    // err is an *errors.Error with code invalid_config
//	}
package validation
