// Package browse holds the ephemeral state of the card browsing surfaces:
// search filtering, the single card carousel, the three card pager, the
// grid and the detail modal. Nothing here is persisted.
package browse
