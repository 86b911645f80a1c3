package router

import (
	"restaurant_manager/constants"
	"restaurant_manager/handler"
	"restaurant_manager/middleware"
	"restaurant_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")

	admin := middleware.RequireRole(constants.ROLE_ADMIN)
	kitchen := middleware.RequireRole(constants.ROLE_ADMIN, constants.ROLE_CHEF)
	floor := middleware.RequireRole(constants.ROLE_ADMIN, constants.ROLE_WAITER)

	auth := v1.Group("/auth")
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", handler.Logout)
	auth.Post("/forgot-password", validate.ForgotPassword(), handler.ForgotPassword)
	auth.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)
	auth.Get("/me", middleware.Protected(), handler.Me)

	public := v1.Group("/public")
	public.Get("/menu", handler.GetPublicMenu)
	public.Get("/seating", handler.GetPublicSeating)
	public.Get("/seating/:seatId", validate.GetById("seatId"), handler.GetPublicSeatingById)
	public.Post("/orders", validate.PlaceOrder(), handler.PlaceOrder)
	public.Post("/orders/lookup", validate.OrderLookup(), handler.LookupOrders)
	public.Get("/orders/:code", handler.GetPublicOrder)
	public.Get("/orders/:code/receipt", handler.GetOrderReceipt)

	staff := v1.Group("/staff", middleware.Protected())
	staff.Get("/waiters", handler.GetWaiters)
	staff.Get("/", admin, validate.FilterStaff(), handler.GetStaffs)
	staff.Get("/:staffId", admin, validate.GetById("staffId"), handler.GetStaffById)
	staff.Post("/", admin, validate.CreateStaff(), handler.CreateStaff)
	staff.Put("/:staffId", admin, validate.GetById("staffId"), validate.EditStaff(), handler.EditStaff)
	staff.Delete("/:staffId", admin, validate.GetById("staffId"), handler.DeleteStaff)

	category := v1.Group("/categories", middleware.Protected(), admin)
	category.Get("/", handler.GetCategories)
	category.Post("/", validate.Category(), handler.CreateCategory)
	category.Put("/:categoryId", validate.GetById("categoryId"), validate.Category(), handler.EditCategory)
	category.Delete("/:categoryId", validate.GetById("categoryId"), handler.DeleteCategory)

	menu := v1.Group("/menu", middleware.Protected())
	menu.Get("/", validate.FilterMenuItem(), handler.GetMenuItems)
	menu.Get("/:itemId", validate.GetById("itemId"), handler.GetMenuItemById)
	menu.Post("/", admin, validate.CreateMenuItem(), handler.CreateMenuItem)
	menu.Put("/:itemId", admin, validate.GetById("itemId"), validate.EditMenuItem(), handler.EditMenuItem)
	menu.Patch("/:itemId/availability", kitchen, validate.GetById("itemId"), validate.Availability(), handler.SetMenuItemAvailability)
	menu.Patch("/:itemId/servings", kitchen, validate.GetById("itemId"), validate.Servings(), handler.SetMenuItemServings)
	menu.Post("/:itemId/image", admin, validate.GetById("itemId"), handler.UploadMenuItemImage)
	menu.Delete("/", admin, validate.Delete(), handler.DeleteMenuItems)
	menu.Delete("/:itemId", admin, validate.GetById("itemId"), handler.DeleteMenuItem)

	order := v1.Group("/orders", middleware.Protected())
	order.Get("/kitchen", kitchen, handler.GetKitchenBoard)
	order.Get("/waiter", floor, handler.GetWaiterBoard)
	order.Post("/archive", admin, handler.ArchiveOrders)
	order.Get("/", admin, validate.FilterOrder(), handler.GetOrders)
	order.Get("/:orderId", validate.GetById("orderId"), handler.GetOrderById)
	order.Patch("/:orderId/status", validate.GetById("orderId"), validate.OrderStatus(), handler.UpdateOrderStatus)
	order.Post("/:orderId/pay", floor, validate.GetById("orderId"), handler.PayOrder)
	order.Patch("/:orderId/notes", validate.GetById("orderId"), validate.OrderNotes(), handler.UpdateOrderNotes)
	order.Delete("/:orderId", admin, validate.GetById("orderId"), handler.DeleteOrder)

	seatingType := v1.Group("/seating-types", middleware.Protected())
	seatingType.Get("/", handler.GetSeatingTypes)
	seatingType.Post("/", admin, validate.CreateSeatingType(), handler.CreateSeatingType)
	seatingType.Post("/reconcile", admin, handler.ReconcileSeatingTypes)
	seatingType.Put("/:typeId", admin, validate.GetById("typeId"), validate.EditSeatingType(), handler.EditSeatingType)
	seatingType.Delete("/:typeId", admin, validate.GetById("typeId"), handler.DeleteSeatingType)

	seating := v1.Group("/seating-units", middleware.Protected())
	seating.Get("/", validate.FilterSeatingUnit(), handler.GetSeatingUnits)
	seating.Post("/", admin, validate.CreateSeatingUnit(), handler.CreateSeatingUnit)
	seating.Post("/batch", admin, validate.BatchSeatingUnit(), handler.BatchCreateSeatingUnits)
	seating.Post("/reset", admin, handler.ResetSeatingUnits)
	seating.Put("/:seatId", admin, validate.GetById("seatId"), validate.EditSeatingUnit(), handler.EditSeatingUnit)
	seating.Delete("/:seatId", admin, validate.GetById("seatId"), handler.DeleteSeatingUnit)
	seating.Patch("/:seatId/status", floor, validate.GetById("seatId"), validate.SeatingStatus(), handler.SetSeatingUnitStatus)
	seating.Patch("/:seatId/waiter", admin, validate.GetById("seatId"), validate.AssignWaiter(), handler.AssignSeatingWaiter)
	seating.Get("/:seatId/qr", admin, validate.GetById("seatId"), handler.GetSeatingUnitQR)

	statistic := v1.Group("/statistic", middleware.Protected(), admin)
	statistic.Get("/", handler.GetStatistics)
	statistic.Get("/export", handler.ExportStatistics)

	history := v1.Group("/order-history", middleware.Protected(), admin)
	history.Get("/", validate.FilterOrderHistory(), handler.GetOrderHistory)
	history.Get("/export", validate.FilterOrderHistory(), handler.ExportOrderHistory)

	app.Get("/ws/orders", middleware.Protected(), handler.UpgradeOrders, websocket.New(handler.OrdersWebsocket))
}
