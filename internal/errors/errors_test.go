package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/daggerheart-wizard/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "no saved draft",
			expected: "NOT_FOUND: no saved draft",
		},
		{
			name:     "data loss error",
			code:     errors.CodeDataLoss,
			message:  "draft record is corrupt",
			expected: "DATA_LOSS: draft record is corrupt",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWithMeta() {
	err := errors.NotFound("ancestry not found").
		WithMeta("kind", "ancestry").
		WithMeta("id", "dragonborn")

	s.Equal("ancestry", err.Meta["kind"])
	s.Equal("dragonborn", err.Meta["id"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("disk full")
	wrapped := errors.Wrap(baseErr, "failed to save draft")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to save draft", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
	s.True(stderrors.Is(wrapped, baseErr))
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.DataLoss("record is not valid JSON")
	wrapped := errors.Wrapf(baseErr, "failed to load draft %s", "daggerheart-wizard-draft")

	s.Equal(errors.CodeDataLoss, wrapped.Code)
	s.Equal("failed to load draft daggerheart-wizard-draft", wrapped.Message)
	s.True(errors.IsDataLoss(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCodeKeepsMeta() {
	baseErr := errors.NotFound("missing").WithMeta("key", "draft")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeUnavailable, "store offline")

	s.Equal(errors.CodeUnavailable, wrapped.Code)
	s.Equal("draft", wrapped.Meta["key"])
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err := errors.OutOfRangef("step %d", 4)
	s.True(stderrors.Is(err, errors.New(errors.CodeOutOfRange, "")))
	s.False(stderrors.Is(err, errors.New(errors.CodeNotFound, "")))
}

func (s *ErrorsTestSuite) TestTypeHelpers() {
	s.True(errors.IsNotFound(errors.Wrap(errors.NotFound("x"), "wrapped")))
	s.True(errors.IsInvalidArgument(errors.InvalidArgumentf("bad %s", "kind")))
	s.True(errors.IsFailedPrecondition(errors.FailedPrecondition("blocked")))
	s.True(errors.IsOutOfRange(errors.OutOfRangef("step %d", 0)))
	s.True(errors.IsInternal(fmt.Errorf("plain")))
	s.False(errors.IsNotFound(nil))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	s.Equal("no saved draft", errors.GetMessage(errors.NotFound("no saved draft")))
	s.Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
	s.Equal("", errors.GetMessage(nil))
}

func (s *ErrorsTestSuite) TestExitCode() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, 0},
		{errors.CodeInvalidArgument, 2},
		{errors.CodeOutOfRange, 2},
		{errors.CodeNotFound, 3},
		{errors.CodeDataLoss, 4},
		{errors.CodeInternal, 1},
	}

	for _, tc := range testCases {
		s.Run(tc.code.String(), func() {
			s.Equal(tc.expected, tc.code.ExitCode())
		})
	}
}
