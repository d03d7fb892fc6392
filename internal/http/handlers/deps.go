package handlers

import (
	"opticart/internal/backend"
	"opticart/internal/checkout"
	"opticart/internal/store"
)

type Deps struct {
	CatalogHandler  *CatalogHandler
	CartHandler     *CartHandler
	WishlistHandler *WishlistHandler
	OrderHandler    *OrderHandler
	AuthHandler     *AuthHandler
	AdminHandler    *AdminHandler
	NoticeHandler   *NoticeHandler
}

func NewDeps(api *backend.Client, sess *store.Session, cart *store.Cart, marks *store.Bookmarks, orders *store.Orders, notify *store.Notifier) *Deps {
	orch := checkout.New(api, cart, orders)

	return &Deps{
		CatalogHandler:  &CatalogHandler{API: api, Marks: marks},
		CartHandler:     &CartHandler{Cart: cart, Notify: notify},
		WishlistHandler: &WishlistHandler{Marks: marks, Notify: notify},
		OrderHandler:    &OrderHandler{API: api, Cart: cart, Orders: orders, Flow: orch},
		AuthHandler:     &AuthHandler{API: api, Session: sess, Cart: cart, Marks: marks},
		AdminHandler:    &AdminHandler{API: api},
		NoticeHandler:   &NoticeHandler{Notify: notify},
	}
}
