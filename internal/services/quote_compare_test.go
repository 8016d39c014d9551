package services

import (
	"testing"

	"maintdesk_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quote(id string, amount float64, rating float64) models.Quote {
	q := models.Quote{
		Amount: amount,
		Trade:  &models.TradeSpecialist{Rating: rating},
	}
	q.ID = id
	return q
}

func TestCompareQuotesEmpty(t *testing.T) {
	assert.Nil(t, CompareQuotes(nil))
	assert.Nil(t, CompareQuotes([]models.Quote{}))
}

func TestCompareQuotesSingle(t *testing.T) {
	c := CompareQuotes([]models.Quote{quote("q1", 250, 3.5)})
	require.NotNil(t, c)

	assert.Equal(t, 1, c.TotalQuotes)
	assert.Equal(t, 250.0, c.LowestAmount)
	assert.Equal(t, 250.0, c.HighestAmount)
	assert.Equal(t, 250.0, c.AverageAmount)
	assert.Equal(t, 0.0, c.PriceRange)
	assert.Equal(t, 0.0, c.Savings)
	// A lone quote is recommended regardless of rating.
	assert.Equal(t, "q1", c.RecommendedQuoteID)
}

func TestCompareQuotesRecommendsCheapestWellRated(t *testing.T) {
	quotes := []models.Quote{
		quote("q1", 100, 3.0),
		quote("q2", 150, 4.5),
		quote("q3", 300, 5.0),
	}

	c := CompareQuotes(quotes)
	require.NotNil(t, c)

	assert.Equal(t, 3, c.TotalQuotes)
	assert.Equal(t, 100.0, c.LowestAmount)
	assert.Equal(t, 300.0, c.HighestAmount)
	assert.Equal(t, 183.33, c.AverageAmount)
	assert.Equal(t, 200.0, c.PriceRange)
	assert.Equal(t, 200.0, c.Savings)
	// q1 is cheapest but its trade is under 4.0; q2 wins.
	assert.Equal(t, "q2", c.RecommendedQuoteID)
}

func TestCompareQuotesFallsBackToCheapest(t *testing.T) {
	quotes := []models.Quote{
		quote("q1", 100, 2.0),
		quote("q2", 150, 3.9),
	}

	c := CompareQuotes(quotes)
	require.NotNil(t, c)
	assert.Equal(t, "q1", c.RecommendedQuoteID)
}

func TestCompareQuotesMissingTrade(t *testing.T) {
	q1 := models.Quote{Amount: 100}
	q1.ID = "q1"
	quotes := []models.Quote{q1, quote("q2", 120, 4.2)}

	c := CompareQuotes(quotes)
	require.NotNil(t, c)
	assert.Equal(t, "q2", c.RecommendedQuoteID)
}
