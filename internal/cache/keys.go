package cache

import (
	"sort"
	"strconv"
	"strings"

	"github.com/guestconcierge/storefront-client/internal/models"
)

// Key construction is centralized here so every mutation invalidates the
// same keys its reads were stored under. Segments are colon-joined; list
// filters are encoded deterministically (tag IDs sorted).

const (
	cartPrefix          = "cart"
	productsPrefix      = "products"
	tagsPrefix          = "tags"
	tipsPrefix          = "tips"
	ordersPrefix        = "orders"
	adminProductsPrefix = "admin_products"
	adminTagsPrefix     = "admin_tags"
	adminTipsPrefix     = "admin_tips"
	adminOrdersPrefix   = "admin_orders"
)

func CartKey(lang string) string {
	return cartPrefix + ":" + lang
}

// CartPrefix covers every locale's cart entry; checkout sweeps it so a
// locale switch cannot resurrect a stale cart.
func CartPrefix() string {
	return cartPrefix + ":"
}

func ProductsPrefix() string {
	return productsPrefix + ":"
}

func TagsPrefix() string {
	return tagsPrefix + ":"
}

func TipsPrefix() string {
	return tipsPrefix + ":"
}

// AdminPrefix covers every admin-scoped entry, swept on logout.
func AdminPrefix() string {
	return "admin_"
}

func AdminProductsPrefix() string {
	return adminProductsPrefix + ":"
}

func ProductsKey(lang, search string, ptype models.ProductType, tagIDs []int64) string {
	return join(productsPrefix, lang, "search="+search, "type="+string(ptype), "tags="+joinIDs(tagIDs))
}

func ProductKey(lang string, id int64) string {
	return join(productsPrefix, lang, strconv.FormatInt(id, 10))
}

func TagsKey(lang string, ptype models.ProductType, tipType models.TipType) string {
	return join(tagsPrefix, lang, "type="+string(ptype), "tip_type="+string(tipType))
}

func TipsKey(lang string, tipType models.TipType) string {
	return join(tipsPrefix, lang, "tip_type="+string(tipType))
}

func OrderKey(lang, id string) string {
	return join(ordersPrefix, lang, id)
}

func AdminProductsKey(search string, ptype models.ProductType) string {
	return join(adminProductsPrefix, "search="+search, "type="+string(ptype))
}

func AdminTagsKey() string {
	return adminTagsPrefix
}

func AdminTipsKey() string {
	return adminTipsPrefix
}

func AdminOrdersKey() string {
	return adminOrdersPrefix
}

// Resource extracts the leading resource name from a key, used as the
// metrics label so cardinality stays bounded.
func Resource(key string) string {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[:i]
	}

	return key
}

func join(segments ...string) string {
	return strings.Join(segments, ":")
}

func joinIDs(ids []int64) string {
	if len(ids) == 0 {
		return ""
	}

	sorted := make([]int64, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = strconv.FormatInt(id, 10)
	}

	return strings.Join(parts, ",")
}
