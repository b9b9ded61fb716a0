package db

import (
	"errors"

	"pesisir-api/internal/domain/entity"

	"gorm.io/gorm"
)

type GormUserGateway struct {
	DB *gorm.DB
}

var _ UserGateway = (*GormUserGateway)(nil)

func NewGormUserGateway(database *gorm.DB) *GormUserGateway {
	return &GormUserGateway{DB: database}
}

func (gateway *GormUserGateway) Create(user *entity.User) error {
	err := gateway.DB.Create(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (gateway *GormUserGateway) FindByUsernameOrEmail(login string) (*entity.User, error) {
	var user entity.User
	err := gateway.DB.Where("username = ? OR email = ?", login, login).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (gateway *GormUserGateway) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	err := gateway.DB.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (gateway *GormUserGateway) Update(user *entity.User) error {
	err := gateway.DB.Save(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (gateway *GormUserGateway) UpdatePassword(id uint, hashedPassword string) error {
	result := gateway.DB.Model(&entity.User{}).Where("id = ?", id).Update("password", hashedPassword)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
