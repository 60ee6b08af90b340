// internal/models/card.go
package models

// Value is the face of a card: "0".."9" or one of the action values.
type Value string

const (
	ValueZero  Value = "0"
	ValueOne   Value = "1"
	ValueTwo   Value = "2"
	ValueThree Value = "3"
	ValueFour  Value = "4"
	ValueFive  Value = "5"
	ValueSix   Value = "6"
	ValueSeven Value = "7"
	ValueEight Value = "8"
	ValueNine  Value = "9"

	ValueDrawTwo      Value = "DRAW_TWO"
	ValueSkip         Value = "SKIP"
	ValueReverse      Value = "REVERSE"
	ValueWild         Value = "WILD"
	ValueWildDrawFour Value = "WILD_DRAW_FOUR"
)

// NumberValues lists the numeric faces in ascending order. The first entry
// appears once per color in a deck; the rest appear twice.
var NumberValues = []Value{
	ValueZero, ValueOne, ValueTwo, ValueThree, ValueFour,
	ValueFive, ValueSix, ValueSeven, ValueEight, ValueNine,
}

// ColoredSpecialValues are the action cards that carry a color.
var ColoredSpecialValues = []Value{ValueDrawTwo, ValueSkip, ValueReverse}

// WildValues are the colorless action cards. Their color is chosen at play
// time and scrubbed whenever they return to the deck.
var WildValues = []Value{ValueWild, ValueWildDrawFour}

// IsWild reports whether v is WILD or WILD_DRAW_FOUR.
func (v Value) IsWild() bool {
	return v == ValueWild || v == ValueWildDrawFour
}

// IsSpecial reports whether v is any action card.
func (v Value) IsSpecial() bool {
	switch v {
	case ValueDrawTwo, ValueSkip, ValueReverse, ValueWild, ValueWildDrawFour:
		return true
	}
	return false
}

// Color is a card color. ColorNone marks a wild card with no chosen color;
// it serializes as an absent field.
type Color string

const (
	ColorNone   Color = ""
	ColorRed    Color = "RED"
	ColorGreen  Color = "GREEN"
	ColorYellow Color = "YELLOW"
	ColorBlue   Color = "BLUE"
)

// Colors lists the four valid card colors.
var Colors = []Color{ColorRed, ColorGreen, ColorYellow, ColorBlue}

// Valid reports whether c is one of the four playable colors.
func (c Color) Valid() bool {
	for _, v := range Colors {
		if c == v {
			return true
		}
	}
	return false
}

// Card is a single card. Identity is the ID; two cards with equal value and
// color are otherwise interchangeable.
type Card struct {
	ID    string `json:"id"`
	Value Value  `json:"value"`
	Color Color  `json:"color,omitempty"`
}

// Points returns the scoring value of the card when left in a loser's hand:
// 50 for the wild family, 20 for colored action cards, face value otherwise.
func (c *Card) Points() int {
	switch c.Value {
	case ValueWild, ValueWildDrawFour:
		return 50
	case ValueDrawTwo, ValueSkip, ValueReverse:
		return 20
	}
	points := 0
	for _, r := range c.Value {
		points = points*10 + int(r-'0')
	}
	return points
}
