package handler

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Manager interface {
	GetName() string
	RegisterPublic(group *gin.RouterGroup)
}

// RegisterConfig carries the shared dependencies handed to every manager.
type RegisterConfig struct {
	DB *gorm.DB
}

type NewManagerFunc func(conf *RegisterConfig) Manager

// Registers collects the manager constructors; each handler file appends
// its own in init().
var Registers []NewManagerFunc
