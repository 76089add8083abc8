package services

import (
	"time"

	"github.com/shopspring/decimal"
)

const nightLength = 24 * time.Hour

// NightsBetween counts the nights of a stay; a partial day counts as a full night.
func NightsBetween(checkIn, checkOut time.Time) int64 {
	d := checkOut.Sub(checkIn)
	if d <= 0 {
		return 0
	}
	nights := int64(d / nightLength)
	if d%nightLength != 0 {
		nights++
	}
	return nights
}

// TotalPrice is the nightly rate times the number of nights, to the cent.
func TotalPrice(pricePerNight decimal.Decimal, checkIn, checkOut time.Time) decimal.Decimal {
	return pricePerNight.Mul(decimal.NewFromInt(NightsBetween(checkIn, checkOut))).Round(2)
}
