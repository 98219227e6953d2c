// Package cart contains the pre-checkout cart aggregate and the weight-based
// quantity policy. Quantities are kilograms for weighed products (fractional
// values permitted, 0.25 kg floor, adjusted in 0.25/0.5/1.0 steps by the
// storefront) or unit counts for piece-priced products. A user holds at most
// one cart item per product; adding an already-present product increments its
// quantity instead of duplicating the row.
package cart
