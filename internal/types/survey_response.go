package types

import (
	"time"

	"gorm.io/datatypes"
)

// SurveyResponse is one respondent's accepted questionnaire answer set.
// Rows are append-only: the application never updates or deletes them.
// Fixed-choice answers are stored as their human-readable label text.
type SurveyResponse struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SubmittedAt time.Time `gorm:"not null;autoCreateTime" json:"submitted_at"`

	// Section A: respondent details
	FullName      string `gorm:"size:255;not null;column:full_name" json:"full_name"`
	Email         string `gorm:"size:255;not null;column:email" json:"email"`
	AgeGroup      string `gorm:"size:50;not null;column:age_group" json:"age_group"`
	HouseholdType string `gorm:"size:50;not null;column:household_type" json:"household_type"`

	// Section B: awareness and usage
	Awareness         bool                        `gorm:"not null;column:awareness" json:"awareness"`
	PlatformsUsed     datatypes.JSONSlice[string] `gorm:"not null;column:platforms_used" json:"platforms_used"`
	OtherPlatformName *string                     `gorm:"size:255;column:other_platform_name" json:"other_platform_name,omitempty"`
	MostUsedPlatform  string                      `gorm:"size:100;not null;column:most_used_platform" json:"most_used_platform"`
	UsageFrequency    string                      `gorm:"size:50;not null;column:usage_frequency" json:"usage_frequency"`

	// Section C: order value and time factor
	AverageOrderValue string `gorm:"size:50;not null;column:average_order_value" json:"average_order_value"`
	TimeSaved         string `gorm:"size:50;not null;column:time_saved" json:"time_saved"`

	// Section D: household consumption behaviour
	ProductCategories       datatypes.JSONSlice[string] `gorm:"not null;column:product_categories" json:"product_categories"`
	PurchaseFrequencyChange string                      `gorm:"size:50;not null;column:purchase_frequency_change" json:"purchase_frequency_change"`
	ImpulseBuying           string                      `gorm:"size:50;not null;column:impulse_buying" json:"impulse_buying"`

	// Section E: price sensitivity and local shops
	PriceSensitivity int    `gorm:"not null;column:price_sensitivity" json:"price_sensitivity"`
	PriceComparison  string `gorm:"size:50;not null;column:price_comparison" json:"price_comparison"`
	LocalShopsImpact string `gorm:"size:50;not null;column:local_shops_impact" json:"local_shops_impact"`

	// Section F: factors influencing preference
	ImportanceDelivery     string `gorm:"size:50;not null;column:importance_delivery" json:"importance_delivery"`
	ImportanceConvenience  string `gorm:"size:50;not null;column:importance_convenience" json:"importance_convenience"`
	ImportancePricing      string `gorm:"size:50;not null;column:importance_pricing" json:"importance_pricing"`
	ImportanceAvailability string `gorm:"size:50;not null;column:importance_availability" json:"importance_availability"`

	// Section G: overall perception
	OverallSatisfaction string `gorm:"size:50;not null;column:overall_satisfaction" json:"overall_satisfaction"`
	FutureUsageIntent   string `gorm:"size:50;not null;column:future_usage_intent" json:"future_usage_intent"`

	// Section H: open-ended
	QualitativeResponse *string `gorm:"type:text;column:qualitative_response" json:"qualitative_response,omitempty"`
}

func (SurveyResponse) TableName() string {
	return "survey_responses"
}
