package main

import "koban_token/sdk"

// saveHolder writes both storage and cache copy so repeated reads stay cheap.
func saveHolder(h *Holder) {
	key := holderKey(h.Address)
	data := EncodeHolder(h)
	sdk.StateSetObject(key, string(data))
	if cache := txCache(); cache != nil {
		cp := *h
		cache[key] = &cp
	}
}

// loadHolder tries cache first and decodes wasm bytes when needed.
func loadHolder(addr sdk.Address) (*Holder, bool) {
	key := holderKey(addr)
	cache := txCache()
	if cache != nil {
		if cached, ok := cache[key]; ok {
			cp := *cached
			return &cp, true
		}
	}
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	h, err := DecodeHolder([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode holder")
	}
	if cache != nil {
		cp := *h
		cache[key] = &cp
	}
	return h, true
}

// holderOrNew returns the stored record or a zeroed one. Holder records come
// into existence lazily on first balance-affecting touch and are never deleted.
func holderOrNew(addr sdk.Address) *Holder {
	if h, ok := loadHolder(addr); ok {
		return h
	}
	return &Holder{Address: addr}
}
