package utils

import "errors"

// CalculateBMR expects weight in kilograms and height in centimeters and
// returns the unrounded Mifflin-St Jeor basal metabolic rate.
func CalculateBMR(weightKg, heightCm float64, age int, gender string) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 {
		return 0, errors.New("age, height and weight must be positive")
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch gender {
	case "male":
		bmr += 5
	case "female":
		bmr -= 161
	default:
		return 0, errors.New("gender must be male or female")
	}
	return bmr, nil
}
