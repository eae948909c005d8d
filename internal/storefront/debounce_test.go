package storefront_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guestconcierge/storefront-client/internal/storefront"
)

func TestDebouncer(t *testing.T) {

	t.Run("Success - Rapid Calls Coalesce To The Last", func(t *testing.T) {
		// Arrange
		d := storefront.NewDebouncer(50 * time.Millisecond)
		defer d.Stop()

		var fired atomic.Int32
		var last atomic.Int32

		// Act: three keystrokes in quick succession.
		for i := 1; i <= 3; i++ {
			i := int32(i)
			d.Do(func() {
				fired.Add(1)
				last.Store(i)
			})

			time.Sleep(10 * time.Millisecond)
		}

		time.Sleep(150 * time.Millisecond)

		// Assert
		assert.Equal(t, int32(1), fired.Load())
		assert.Equal(t, int32(3), last.Load())
	})

	t.Run("Success - Separated Calls Both Fire", func(t *testing.T) {
		// Arrange
		d := storefront.NewDebouncer(20 * time.Millisecond)
		defer d.Stop()

		var fired atomic.Int32

		// Act
		d.Do(func() { fired.Add(1) })
		time.Sleep(60 * time.Millisecond)

		d.Do(func() { fired.Add(1) })
		time.Sleep(60 * time.Millisecond)

		// Assert
		assert.Equal(t, int32(2), fired.Load())
	})

	t.Run("Success - Stop Cancels Pending Call", func(t *testing.T) {
		// Arrange
		d := storefront.NewDebouncer(30 * time.Millisecond)

		var fired atomic.Int32

		// Act
		d.Do(func() { fired.Add(1) })
		d.Stop()

		time.Sleep(80 * time.Millisecond)

		// Assert
		assert.Equal(t, int32(0), fired.Load())
	})
}
