package model

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidMeasurement = errors.New("model: invalid bmi measurement")

const (
	MinHeightCM = 100
	MaxHeightCM = 250
	MinWeightKG = 30
	MaxWeightKG = 300
)

type BMICategory string

const (
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal"
	BMIOverweight  BMICategory = "Overweight"
	BMIObese       BMICategory = "Obese"
)

func (c BMICategory) IsValid() bool {
	switch c {
	case BMIUnderweight, BMINormal, BMIOverweight, BMIObese:
		return true
	default:
		return false
	}
}

// BMIState caches the last calculation. Result and Category are stale
// until the next calculation after Height or Weight change.
type BMIState struct {
	Height   float64
	Weight   float64
	Result   float64
	Category BMICategory
}

func (b BMIState) Calculated() bool {
	return b.Category != ""
}

// ComputeBMI returns weight / (height in meters)^2 rounded to one decimal,
// and the category of the unrounded value.
func ComputeBMI(heightCM, weightKG float64) (float64, BMICategory) {
	m := heightCM / 100
	raw := weightKG / (m * m)
	return math.Round(raw*10) / 10, ClassifyBMI(raw)
}

func ClassifyBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

// ValidateBMIInput applies the input bounds the calculator form accepts.
func ValidateBMIInput(heightCM, weightKG float64) error {
	if heightCM <= 0 || weightKG <= 0 {
		return fmt.Errorf("%w: height and weight must be positive", ErrInvalidMeasurement)
	}
	if heightCM < MinHeightCM || heightCM > MaxHeightCM {
		return fmt.Errorf("%w: height %.1f cm (want %d-%d)", ErrInvalidMeasurement, heightCM, MinHeightCM, MaxHeightCM)
	}
	if weightKG < MinWeightKG || weightKG > MaxWeightKG {
		return fmt.Errorf("%w: weight %.1f kg (want %d-%d)", ErrInvalidMeasurement, weightKG, MinWeightKG, MaxWeightKG)
	}
	return nil
}

type BMIRange struct {
	Label    string
	Category BMICategory
}

var BMIRanges = []BMIRange{
	{Label: "Below 18.5", Category: BMIUnderweight},
	{Label: "18.5 - 24.9", Category: BMINormal},
	{Label: "25.0 - 29.9", Category: BMIOverweight},
	{Label: "30.0+", Category: BMIObese},
}

var bmiTips = map[BMICategory][]string{
	BMIUnderweight: {
		"Eat more frequent, smaller meals",
		"Add healthy fats to your diet",
		"Include protein-rich foods",
		"Consult a nutritionist",
	},
	BMINormal: {
		"Maintain your current lifestyle",
		"Stay active with regular exercise",
		"Eat a balanced diet",
		"Monitor your weight regularly",
	},
	BMIOverweight: {
		"Increase physical activity",
		"Reduce portion sizes",
		"Choose whole foods",
		"Stay hydrated",
	},
	BMIObese: {
		"Consult a healthcare provider",
		"Start with light exercise",
		"Focus on nutrition",
		"Set realistic goals",
	},
}

// BMITips returns the health tips for c, or nil when nothing is calculated.
func BMITips(c BMICategory) []string {
	tips := bmiTips[c]
	if len(tips) == 0 {
		return nil
	}
	out := make([]string, len(tips))
	copy(out, tips)
	return out
}
