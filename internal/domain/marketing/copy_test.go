package marketing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVehicleRef_Prompt(t *testing.T) {
	ref := VehicleRef{Make: "Ferrari", Model: "SF90 Stradale", Year: 2023}

	assert.Equal(t,
		"Write a short, sophisticated, and luxurious sales description for a 2023 Ferrari SF90 Stradale. "+
			"Focus on emotion, prestige, and engineering. Maximum 2 sentences. Do not use exclamation marks. "+
			"Tone: Elegant, Exclusive, Gold-standard.",
		ref.Prompt())
}

func TestVehicleRef_FallbackCopy(t *testing.T) {
	ref := VehicleRef{Make: "Bugatti", Model: "Chiron", Year: 2022}

	assert.Equal(t, "The definitive 2022 Bugatti Chiron. A class of its own.", ref.FallbackCopy())
}

func TestVehicleRef_CacheKey(t *testing.T) {
	a := VehicleRef{Make: "Porsche", Model: "911 GT3 RS", Year: 2024}
	b := VehicleRef{Make: " porsche", Model: "911 gt3 rs ", Year: 2024}
	c := VehicleRef{Make: "Porsche", Model: "911 GT3 RS", Year: 2023}

	assert.Equal(t, "porsche:911 gt3 rs:2024", a.CacheKey())
	assert.Equal(t, a.CacheKey(), b.CacheKey())
	assert.NotEqual(t, a.CacheKey(), c.CacheKey())
}

func TestCopySource_IsFallback(t *testing.T) {
	assert.False(t, CopySourceGenerated.IsFallback())
	assert.False(t, CopySourceCache.IsFallback())
	assert.True(t, CopySourceMissingKey.IsFallback())
	assert.True(t, CopySourceEmpty.IsFallback())
	assert.True(t, CopySourceFallback.IsFallback())
}
