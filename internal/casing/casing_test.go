package casing_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guestconcierge/storefront-client/internal/casing"
)

func TestSnakeToCamel(t *testing.T) {
	tests := map[string]string{
		"product_id":     "productId",
		"variation_name": "variationName",
		"image_url":      "imageUrl",
		"inserted_at":    "insertedAt",
		"token":          "token",
		"tip_type":       "tipType",
		"a_b_c":          "aBC",
		"kebab-case":     "kebabCase",
		"":               "",
		// No lowercase letter after the delimiter: left alone.
		"item_2":  "item_2",
		"_":       "_",
		"already": "already",
	}

	for input, want := range tests {
		assert.Equal(t, want, casing.SnakeToCamel(input), "SnakeToCamel(%q)", input)
	}
}

func TestCamelToSnake(t *testing.T) {
	tests := map[string]string{
		"productId":     "product_id",
		"variationName": "variation_name",
		"imageUrl":      "image_url",
		"token":         "token",
		"tipType":       "tip_type",
		"":              "",
		// Consecutive capitals get one underscore each; the backend
		// never uses such keys, this pins the behavior.
		"imageURL": "image_u_r_l",
		"item2Id":  "item2_id",
	}

	for input, want := range tests {
		assert.Equal(t, want, casing.CamelToSnake(input), "CamelToSnake(%q)", input)
	}
}

func TestKeyRoundTrip(t *testing.T) {
	// Keys that are consistently snake_case or camelCase with no
	// acronyms or digit-adjacent capitals round-trip exactly.
	snakeKeys := []string{"product_id", "image_url", "unit_price", "token", "data"}
	for _, key := range snakeKeys {
		assert.Equal(t, key, casing.CamelToSnake(casing.SnakeToCamel(key)), "snake round trip %q", key)
	}

	camelKeys := []string{"productId", "imageUrl", "unitPrice", "token", "data"}
	for _, key := range camelKeys {
		assert.Equal(t, key, casing.SnakeToCamel(casing.CamelToSnake(key)), "camel round trip %q", key)
	}
}

func TestCamelizeKeys(t *testing.T) {

	t.Run("Nested Objects And Arrays", func(t *testing.T) {
		// Arrange
		input := map[string]any{
			"cart_token": "abc",
			"line_items": []any{
				map[string]any{"product_id": float64(42), "unit_price": "9.99"},
				map[string]any{"product_id": float64(7), "variation_id": nil},
			},
		}

		// Act
		got := casing.CamelizeKeys(input)

		// Assert
		want := map[string]any{
			"cartToken": "abc",
			"lineItems": []any{
				map[string]any{"productId": float64(42), "unitPrice": "9.99"},
				map[string]any{"productId": float64(7), "variationId": nil},
			},
		}
		assert.Equal(t, want, got)
	})

	t.Run("Scalars Unchanged", func(t *testing.T) {
		assert.Nil(t, casing.CamelizeKeys(nil))
		assert.Equal(t, "snake_case_string", casing.CamelizeKeys("snake_case_string"),
			"string values must never be altered even when they look like identifiers")
		assert.Equal(t, float64(3.5), casing.CamelizeKeys(float64(3.5)))
		assert.Equal(t, true, casing.CamelizeKeys(true))
	})

	t.Run("Array Order And Length Preserved", func(t *testing.T) {
		input := []any{"c", "a", "b", nil, float64(1)}

		got := casing.CamelizeKeys(input)

		assert.Equal(t, input, got)
	})

	t.Run("Input Not Mutated", func(t *testing.T) {
		input := map[string]any{
			"product_id": float64(1),
			"nested":     map[string]any{"image_url": "x"},
		}

		_ = casing.CamelizeKeys(input)

		assert.Contains(t, input, "product_id")
		assert.Contains(t, input["nested"], "image_url")
	})
}

func TestSnakeKeys(t *testing.T) {
	input := map[string]any{
		"cartToken":   "abc",
		"contactInfo": "x@y.z",
		"items":       []any{map[string]any{"productId": float64(1), "quantity": float64(2)}},
	}

	got := casing.SnakeKeys(input)

	want := map[string]any{
		"cart_token":   "abc",
		"contact_info": "x@y.z",
		"items":        []any{map[string]any{"product_id": float64(1), "quantity": float64(2)}},
	}
	assert.Equal(t, want, got)
}

// TestTreeRoundTripProperty generates random JSON trees with well-formed
// snake_case keys and checks SnakeKeys(CamelizeKeys(v)) == v, and the mirror
// property starting from camelCase.
func TestTreeRoundTripProperty(t *testing.T) {

	rng := rand.New(rand.NewSource(1))

	words := []string{"product", "price", "image", "url", "token", "cart", "tag", "order", "label", "notes"}

	snakeKey := func() string {
		n := 1 + rng.Intn(3)

		key := words[rng.Intn(len(words))]
		for i := 1; i < n; i++ {
			key += "_" + words[rng.Intn(len(words))]
		}

		return key
	}

	var genValue func(depth int) any

	genValue = func(depth int) any {
		if depth <= 0 {
			switch rng.Intn(4) {
			case 0:
				return fmt.Sprintf("value_%d", rng.Intn(100))
			case 1:
				return float64(rng.Intn(1000))
			case 2:
				return rng.Intn(2) == 0
			default:
				return nil
			}
		}

		switch rng.Intn(3) {
		case 0:
			obj := map[string]any{}
			for i := 0; i < rng.Intn(4); i++ {
				obj[snakeKey()] = genValue(depth - 1)
			}

			return obj
		case 1:
			arr := make([]any, rng.Intn(4))
			for i := range arr {
				arr[i] = genValue(depth - 1)
			}

			return arr
		default:
			return genValue(0)
		}
	}

	for i := 0; i < 200; i++ {
		snakeTree := genValue(4)

		camelTree := casing.CamelizeKeys(snakeTree)
		require.Equal(t, snakeTree, casing.SnakeKeys(camelTree), "wire -> domain -> wire must restore the tree (iteration %d)", i)

		require.Equal(t, camelTree, casing.CamelizeKeys(casing.SnakeKeys(camelTree)), "domain -> wire -> domain must restore the tree (iteration %d)", i)
	}
}
