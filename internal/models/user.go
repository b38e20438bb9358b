// internal/models/user.go
package models

import "golang.org/x/crypto/bcrypt"

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	UserName string `json:"userName" gorm:"size:100;not null"`
	Email    string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password string `json:"-" gorm:"size:255;not null"`
	Role     Role   `json:"role" gorm:"type:varchar(20);default:'user'"`

	Purchases []Purchase `json:"purchases,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Sells     []Sell     `json:"sells,omitempty" gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE"`
	CartItems []Cart     `json:"cart_items,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (u *User) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword compares in constant time via bcrypt.
func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}
