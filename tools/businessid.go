package tools

import (
	"context"

	"github.com/olgasafonova/ytunnus-mcp-server/internal/finland"
	"github.com/olgasafonova/ytunnus-mcp-server/internal/selftest"
	"github.com/olgasafonova/ytunnus-mcp-server/metrics"
	"github.com/olgasafonova/ytunnus-mcp-server/tracing"
)

// ValidateBusinessID validates the candidate in args. Anything other than a
// JSON string is reported as a single not_text defect without reaching the validator.
func (h *HandlerRegistry) ValidateBusinessID(ctx context.Context, args ValidateBusinessIDArgs) (ValidateBusinessIDResult, error) {
	_, span := tracing.StartSpan(ctx, "businessid.validate")
	defer span.End()

	input, ok := args.BusinessID.(string)

	var result finland.Result
	if ok {
		result = h.validator.Validate(input)
	} else {
		result = finland.NotTextResult()
	}

	kinds := kindNames(result)
	metrics.RecordValidation(result.Valid, kinds...)
	tracing.AddValidationAttributes(span, input, result.Valid, kinds)

	return toValidateResult(input, result), nil
}

// RunSelfTest runs the built-in cases against the registry's validator.
func (h *HandlerRegistry) RunSelfTest(ctx context.Context, _ RunSelfTestArgs) (RunSelfTestResult, error) {
	_, span := tracing.StartSpan(ctx, "businessid.self_test")
	defer span.End()

	report := selftest.Run(h.validator, nil)
	metrics.RecordSelfTest(report.Passed, report.Failed)

	result := RunSelfTestResult{
		Cases:  make([]SelfTestCaseResult, 0, report.Total()),
		Total:  report.Total(),
		Passed: report.Passed,
		Failed: report.Failed,
	}
	for _, o := range report.Outcomes {
		result.Cases = append(result.Cases, SelfTestCaseResult{
			Input:       o.Case.Input,
			Description: o.Case.Description,
			Expected:    o.Case.Expected,
			Valid:       o.Result.Valid,
			Passed:      o.Passed,
			Reasons:     o.Result.Messages(),
		})
	}
	return result, nil
}

// toValidateResult converts a finland.Result to the tool output shape
func toValidateResult(input string, r finland.Result) ValidateBusinessIDResult {
	out := ValidateBusinessIDResult{
		BusinessID: input,
		Valid:      r.Valid,
	}
	for _, reason := range r.Reasons {
		out.Reasons = append(out.Reasons, ReasonInfo{
			Kind:    reason.Kind.String(),
			Message: reason.Message(),
			Char:    reason.Char,
		})
	}
	return out
}

func kindNames(r finland.Result) []string {
	names := make([]string, 0, len(r.Reasons))
	for _, reason := range r.Reasons {
		names = append(names, reason.Kind.String())
	}
	return names
}
