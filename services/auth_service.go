package services

import (
	"errors"

	"github.com/QUATTR0KI/fatbeaches-web/config"
	"github.com/QUATTR0KI/fatbeaches-web/models"
	"github.com/QUATTR0KI/fatbeaches-web/utils"

	"github.com/google/uuid"
)

func RegisterUser(email, password, name string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	account := models.UserAccount{
		UserID:   uuid.NewString(),
		Email:    email,
		Password: hashedPassword,
		Name:     name,
		Role:     models.RoleUnset,
	}

	return config.DB.Create(&account).Error
}

// AuthenticateUser checks credentials and returns a session token plus the
// account's user id. A sign-in event is published so subscribers can
// re-evaluate access state.
func AuthenticateUser(email, password string) (string, string, error) {
	var account models.UserAccount
	if err := config.DB.Where("email = ?", email).First(&account).Error; err != nil {
		return "", "", errors.New("user not found")
	}

	if !utils.CheckPasswordHash(password, account.Password) {
		return "", "", errors.New("incorrect password")
	}

	token, err := utils.GenerateJWT(account.UserID, account.Email)
	if err != nil {
		return "", "", err
	}

	EmitSessionEvent(account.UserID, EventSignedIn)
	return token, account.UserID, nil
}

func FindAccountByUserID(userID string) (*models.UserAccount, error) {
	var account models.UserAccount
	if err := config.DB.Where("user_id = ?", userID).First(&account).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &account, nil
}
