package shared

import (
	"strings"

	"github.com/google/uuid"
)

const (
	OrderIDPrefix       = "ORD"
	ReservationIDPrefix = "RES"
	ReviewIDPrefix      = "REV"
)

type IDGenerator interface {
	NewID(prefix string) string
}

type UUIDGenerator struct{}

func NewUUIDGenerator() IDGenerator {
	return UUIDGenerator{}
}

func (UUIDGenerator) NewID(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.NewString())
}
