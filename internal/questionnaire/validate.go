package questionnaire

import (
	"fmt"
	"net/mail"

	"gorm.io/datatypes"

	"github.com/fillme/fillme-backend/internal/types"
)

// SubmissionInput mirrors the inbound submission body. Scalar fields are
// pointers so that an absent field is distinguishable from a zero value.
type SubmissionInput struct {
	FullName      *string `json:"full_name"`
	Email         *string `json:"email"`
	AgeGroup      *string `json:"age_group"`
	HouseholdType *string `json:"household_type"`

	Awareness         *bool    `json:"awareness"`
	PlatformsUsed     []string `json:"platforms_used"`
	OtherPlatformName *string  `json:"other_platform_name"`
	MostUsedPlatform  *string  `json:"most_used_platform"`
	UsageFrequency    *string  `json:"usage_frequency"`

	AverageOrderValue *string `json:"average_order_value"`
	TimeSaved         *string `json:"time_saved"`

	ProductCategories       []string `json:"product_categories"`
	PurchaseFrequencyChange *string  `json:"purchase_frequency_change"`
	ImpulseBuying           *string  `json:"impulse_buying"`

	PriceSensitivity *int    `json:"price_sensitivity"`
	PriceComparison  *string `json:"price_comparison"`
	LocalShopsImpact *string `json:"local_shops_impact"`

	ImportanceDelivery     *string `json:"importance_delivery"`
	ImportanceConvenience  *string `json:"importance_convenience"`
	ImportancePricing      *string `json:"importance_pricing"`
	ImportanceAvailability *string `json:"importance_availability"`

	OverallSatisfaction *string `json:"overall_satisfaction"`
	FutureUsageIntent   *string `json:"future_usage_intent"`

	QualitativeResponse *string `json:"qualitative_response"`
}

// FieldError is a validation rejection attributable to a single field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func fieldErr(field, format string, args ...interface{}) *FieldError {
	return &FieldError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks a raw submission against the questionnaire schema and, on
// success, returns the record ready for persistence (id and submitted_at are
// assigned by the store). Checks run in order and fail fast: presence,
// type/format, enumeration membership, numeric range, non-empty multi-select.
// The first failing check is returned as a *FieldError.
func Validate(in SubmissionInput) (*types.SurveyResponse, error) {
	required := []struct {
		name    string
		present bool
	}{
		{"full_name", in.FullName != nil},
		{"email", in.Email != nil},
		{"age_group", in.AgeGroup != nil},
		{"household_type", in.HouseholdType != nil},
		{"awareness", in.Awareness != nil},
		{"platforms_used", in.PlatformsUsed != nil},
		{"most_used_platform", in.MostUsedPlatform != nil},
		{"usage_frequency", in.UsageFrequency != nil},
		{"average_order_value", in.AverageOrderValue != nil},
		{"time_saved", in.TimeSaved != nil},
		{"product_categories", in.ProductCategories != nil},
		{"purchase_frequency_change", in.PurchaseFrequencyChange != nil},
		{"impulse_buying", in.ImpulseBuying != nil},
		{"price_sensitivity", in.PriceSensitivity != nil},
		{"price_comparison", in.PriceComparison != nil},
		{"local_shops_impact", in.LocalShopsImpact != nil},
		{"importance_delivery", in.ImportanceDelivery != nil},
		{"importance_convenience", in.ImportanceConvenience != nil},
		{"importance_pricing", in.ImportancePricing != nil},
		{"importance_availability", in.ImportanceAvailability != nil},
		{"overall_satisfaction", in.OverallSatisfaction != nil},
		{"future_usage_intent", in.FutureUsageIntent != nil},
	}
	for _, f := range required {
		if !f.present {
			return nil, fieldErr(f.name, "field is required")
		}
	}
	if *in.FullName == "" {
		return nil, fieldErr("full_name", "must not be empty")
	}

	if addr, err := mail.ParseAddress(*in.Email); err != nil || addr.Address != *in.Email {
		return nil, fieldErr("email", "must be a valid email address")
	}

	enums := []struct {
		name  string
		value string
		set   OptionSet
	}{
		{"age_group", *in.AgeGroup, AgeGroups},
		{"household_type", *in.HouseholdType, HouseholdTypes},
		{"usage_frequency", *in.UsageFrequency, UsageFrequencies},
		{"average_order_value", *in.AverageOrderValue, OrderValues},
		{"time_saved", *in.TimeSaved, TimeSavedBrackets},
		{"purchase_frequency_change", *in.PurchaseFrequencyChange, PurchaseFrequencyChanges},
		{"impulse_buying", *in.ImpulseBuying, AgreementLevels},
		{"price_comparison", *in.PriceComparison, PriceComparisons},
		{"local_shops_impact", *in.LocalShopsImpact, LocalShopsImpacts},
		{"importance_delivery", *in.ImportanceDelivery, ImportanceLevels},
		{"importance_convenience", *in.ImportanceConvenience, ImportanceLevels},
		{"importance_pricing", *in.ImportancePricing, ImportanceLevels},
		{"importance_availability", *in.ImportanceAvailability, ImportanceLevels},
		{"overall_satisfaction", *in.OverallSatisfaction, SatisfactionLevels},
		{"future_usage_intent", *in.FutureUsageIntent, FutureUsageIntents},
	}
	for _, e := range enums {
		if !e.set.Contains(e.value) {
			return nil, fieldErr(e.name, "%q is not a valid option", e.value)
		}
	}

	if *in.PriceSensitivity < PriceSensitivityMin || *in.PriceSensitivity > PriceSensitivityMax {
		return nil, fieldErr("price_sensitivity", "must be between %d and %d", PriceSensitivityMin, PriceSensitivityMax)
	}

	// Multi-select answers stay free text so the "Others" write-in works;
	// only non-emptiness is enforced.
	if len(in.PlatformsUsed) == 0 {
		return nil, fieldErr("platforms_used", "must select at least one option")
	}
	if len(in.ProductCategories) == 0 {
		return nil, fieldErr("product_categories", "must select at least one option")
	}

	return &types.SurveyResponse{
		FullName:                *in.FullName,
		Email:                   *in.Email,
		AgeGroup:                *in.AgeGroup,
		HouseholdType:           *in.HouseholdType,
		Awareness:               *in.Awareness,
		PlatformsUsed:           datatypes.NewJSONSlice(in.PlatformsUsed),
		OtherPlatformName:       in.OtherPlatformName,
		MostUsedPlatform:        *in.MostUsedPlatform,
		UsageFrequency:          *in.UsageFrequency,
		AverageOrderValue:       *in.AverageOrderValue,
		TimeSaved:               *in.TimeSaved,
		ProductCategories:       datatypes.NewJSONSlice(in.ProductCategories),
		PurchaseFrequencyChange: *in.PurchaseFrequencyChange,
		ImpulseBuying:           *in.ImpulseBuying,
		PriceSensitivity:        *in.PriceSensitivity,
		PriceComparison:         *in.PriceComparison,
		LocalShopsImpact:        *in.LocalShopsImpact,
		ImportanceDelivery:      *in.ImportanceDelivery,
		ImportanceConvenience:   *in.ImportanceConvenience,
		ImportancePricing:       *in.ImportancePricing,
		ImportanceAvailability:  *in.ImportanceAvailability,
		OverallSatisfaction:     *in.OverallSatisfaction,
		FutureUsageIntent:       *in.FutureUsageIntent,
		QualitativeResponse:     in.QualitativeResponse,
	}, nil
}
