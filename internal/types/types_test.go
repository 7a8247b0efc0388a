package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoinString(t *testing.T) {
	assert.Equal(t, "Penny", Penny.String())
	assert.Equal(t, "Quarter", Quarter.String())
	assert.Equal(t, "Coin(7)", Coin(7).String())
}

func TestPasswordScoreString(t *testing.T) {
	s := PasswordScore{Score: 2, Feedback: "add a digit"}
	assert.Equal(t, "2/3 (add a digit)", s.String())
}
