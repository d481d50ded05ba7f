package model

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRefFormats(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		assert.Regexp(t, `^BK-[0-9A-Z]{6}$`, NewBookingRef(rnd))
		assert.Regexp(t, `^SIM-[0-9a-z]{5}$`, NewSimulatedRef(rnd))
		assert.Regexp(t, `^CT-[0-9A-Z]{6}$`, NewInquiryRef(rnd))
	}
}

func TestRefsDeterministic(t *testing.T) {
	a := NewBookingRef(rand.New(rand.NewSource(99)))
	b := NewBookingRef(rand.New(rand.NewSource(99)))
	assert.Equal(t, a, b)
}

func TestIsValidSlot(t *testing.T) {
	assert.True(t, IsValidSlot(SlotA))
	assert.True(t, IsValidSlot(SlotB))
	assert.False(t, IsValidSlot("C"))
	assert.False(t, IsValidSlot(""))
	assert.False(t, IsValidSlot("a"))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, 9, 5, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2026-09-05", FormatDate(d))
}
