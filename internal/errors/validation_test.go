package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/daggerheart-wizard/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationErrorOrdersFields() {
	ve := errors.NewValidationError()
	ve.AddFieldError("store", "is invalid")
	ve.AddFieldError("draftKey", "is required")

	s.True(ve.HasErrors())
	s.Equal("validation failed: draftKey: is required; store: is invalid", ve.Error())

	err := ve.ToError()
	s.Equal(errors.CodeInvalidArgument, err.Code)
	s.NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestBuilderWithoutErrors() {
	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "daggerheart-wizard-draft", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("draftKey", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Error(err)
				s.Contains(err.Error(), "draftKey: is required")
			} else {
				s.NoError(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("currentStep", 4, 1, 3, vb)
	errors.ValidateRange("redisDB", 0, 0, 15, vb)

	err := vb.Build()
	s.Require().Error(err)
	s.Contains(err.Error(), "currentStep: must be between 1 and 3")
	s.NotContains(err.Error(), "redisDB")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("store", "memcached", []string{"file", "redis", "sqlite"}, vb)
	errors.ValidateEnum("layout", "grid", []string{"carousel", "grid"}, vb)

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Equal([]string{"must be one of: file, redis, sqlite"}, fields["store"])
	s.NotContains(fields, "layout")
}
