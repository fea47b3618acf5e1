// Package errors provides the structured error type used across the wizard.
//
// Every error carries a Code, a human readable message, an optional cause and
// optional metadata. Wrapping preserves the code of the innermost coded error,
// so callers can branch on the kind of failure without string matching.
//
// # Basic Usage
//
//	err := errors.NotFound("no saved draft")
//	err := errors.InvalidArgumentf("unknown catalog kind %q", kind)
//
// Adding metadata:
//
//	err := errors.NotFoundf("ancestry %s not found", id).
//	    WithMeta("kind", "ancestry")
//
// Wrapping errors:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to persist draft")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // start a fresh draft
//	}
//	if errors.IsDataLoss(err) {
//	    // stored record could not be decoded
//	}
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("draftKey", cfg.DraftKey, vb)
//	errors.ValidateEnum("store", cfg.Store, []string{"file", "redis", "sqlite"}, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - NotFound when the draft record does not exist
//   - DataLoss when a stored record cannot be decoded
//   - Wrap driver errors with context
//
// Orchestrator layer:
//   - InvalidArgument for bad input
//   - OutOfRange when a step transition would leave the step sequence
//   - FailedPrecondition for operations that are not allowed in the current state
//
// Command layer:
//   - Print GetMessage(err) and exit with GetCode(err).ExitCode()
package errors
