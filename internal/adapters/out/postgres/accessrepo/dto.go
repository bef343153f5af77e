// Package accessrepo persists users, the permission catalog and the channel
// list, together with the grants that link them.
package accessrepo

import (
	"tracking/internal/core/domain/model/access"
)

type UserDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Email       string          `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name        string          `gorm:"type:varchar(255);not null;default:''"`
	Role        string          `gorm:"type:varchar(16);not null;default:'normal'"`
	Permissions []PermissionDTO `gorm:"many2many:user_permissions;joinForeignKey:UserID;joinReferences:PermissionID;constraint:OnDelete:CASCADE"`
	Channels    []ChannelDTO    `gorm:"many2many:user_channels;joinForeignKey:UserID;joinReferences:ChannelID;constraint:OnDelete:CASCADE"`
}

func (UserDTO) TableName() string {
	return "users"
}

type PermissionDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(64);not null;uniqueIndex"`
	Description string `gorm:"type:varchar(255);not null;default:''"`
}

func (PermissionDTO) TableName() string {
	return "permissions"
}

type ChannelDTO struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(255);not null;uniqueIndex"`
}

func (ChannelDTO) TableName() string {
	return "channels"
}

func fromDomain(u *access.User) UserDTO {
	return UserDTO{
		ID:    u.ID(),
		Email: u.Email(),
		Name:  u.Name(),
		Role:  string(u.Role()),
	}
}

func toDomain(dto UserDTO) (*access.User, error) {
	role, err := access.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	permissions := make([]access.Permission, 0, len(dto.Permissions))
	for _, p := range dto.Permissions {
		permissions = append(permissions, access.Permission(p.Name))
	}

	channels := make([]string, 0, len(dto.Channels))
	for _, c := range dto.Channels {
		channels = append(channels, c.Name)
	}

	return access.RestoreUser(dto.ID, dto.Email, dto.Name, role, permissions, channels)
}
