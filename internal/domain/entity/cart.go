package entity

// CartItem is one cart line: a product plus the selected quantity. Carts are
// ephemeral and never persisted; a fresh browsing session starts empty.
type CartItem struct {
	Product
	Quantity int `json:"quantity"` // Always >= 1; lines at zero are removed instead.
}

// Cart is an ordered sequence of cart lines, at most one per product id.
type Cart []CartItem

// AddToCart returns a new cart with the product's quantity incremented by
// one, appending a fresh line with quantity 1 when the product is not yet in
// the cart. Line positions are preserved.
func AddToCart(cart Cart, product Product) Cart {
	next := make(Cart, len(cart), len(cart)+1)
	copy(next, cart)

	for i, item := range next {
		if item.ID == product.ID {
			next[i].Quantity++

			return next
		}
	}

	return append(next, CartItem{Product: product, Quantity: 1})
}

// RemoveFromCart returns a new cart with the product's quantity decremented
// by one, dropping the line entirely when it reaches zero. Removing an absent
// product id is a no-op.
func RemoveFromCart(cart Cart, productID string) Cart {
	next := make(Cart, 0, len(cart))
	for _, item := range cart {
		if item.ID == productID {
			if item.Quantity > 1 {
				item.Quantity--
				next = append(next, item)
			}

			continue
		}
		next = append(next, item)
	}

	return next
}

// ClearCart returns an empty cart.
func ClearCart() Cart {
	return Cart{}
}

// CartTotal sums effective price x quantity over the cart's lines.
func CartTotal(cart Cart) float64 {
	var total float64
	for _, item := range cart {
		total += item.EffectivePrice() * float64(item.Quantity)
	}

	return total
}
