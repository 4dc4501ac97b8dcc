package cart

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumiere-essence/maison-backend/internal/modules/catalog"
)

func product(id string, price float64) catalog.Product {
	return catalog.Product{ID: id, Name: "Product " + id, Price: price}
}

func TestRepeatedAddIncrementsSingleLine(t *testing.T) {
	var c Cart
	p := product("1", 64)

	c.Add(p)
	c.Add(p)
	c.Add(p)

	items := c.Items()
	require.Len(t, items, 1)
	require.Equal(t, 3, items[0].Quantity)
	require.Equal(t, 3, c.Count())
}

func TestSetQuantityNeverDropsBelowOne(t *testing.T) {
	var c Cart
	c.Add(product("1", 64))

	c.SetQuantity("1", -100)
	require.Equal(t, 1, c.Items()[0].Quantity)

	c.SetQuantity("1", 4)
	require.Equal(t, 5, c.Items()[0].Quantity)

	c.SetQuantity("1", -3)
	require.Equal(t, 2, c.Items()[0].Quantity)

	// unknown id is a no-op
	c.SetQuantity("missing", 10)
	require.Len(t, c.Items(), 1)
}

func TestTotalIsOrderInvariant(t *testing.T) {
	a := product("A", 64)
	b := product("B", 48)

	var first Cart
	first.Add(a)
	first.Add(a)
	first.Add(b)

	var second Cart
	second.Add(b)
	second.Add(a)
	second.Add(a)

	require.Equal(t, 176.0, first.Total())
	require.Equal(t, first.Total(), second.Total())
	require.Equal(t, 3, first.Count())
}

func TestRemove(t *testing.T) {
	var c Cart
	c.Add(product("1", 10))
	c.Add(product("2", 20))

	c.Remove("1")
	require.Len(t, c.Items(), 1)
	require.Equal(t, "2", c.Items()[0].ID)

	c.Remove("1") // absent: no-op
	require.Len(t, c.Items(), 1)
}

func TestSnapshotIsolation(t *testing.T) {
	var c Cart
	p := product("1", 64)
	c.Add(p)

	// a later catalog edit must not reach the cart line
	p.Price = 999
	require.Equal(t, 64.0, c.Items()[0].Price)
}

func TestManagerSessionsAreIndependent(t *testing.T) {
	m := NewManager()

	m.With("elena@example.com", func(c *Cart) { c.Add(product("1", 64)) })
	m.With("ELENA@example.com", func(c *Cart) { c.Add(product("1", 64)) })
	m.With("other@example.com", func(c *Cart) { c.Add(product("2", 48)) })

	// session keys are case-insensitive
	require.Equal(t, 2, m.Get("elena@example.com").Count())
	require.Equal(t, 1, m.Get("other@example.com").Count())

	m.Drop("elena@example.com")
	require.Zero(t, m.Get("elena@example.com").Count())
}
