package controllers

import (
	"net/http"

	"movecrm-backend/models"

	"github.com/gin-gonic/gin"
)

// Label is a display string in the two dashboard languages
type Label struct {
	Ru string `json:"ru"`
	En string `json:"en"`
}

var statusLabels = map[models.OrderStatus]Label{
	models.OrderStatusPending:    {Ru: "Ожидает", En: "Pending"},
	models.OrderStatusInProgress: {Ru: "В работе", En: "In Progress"},
	models.OrderStatusCompleted:  {Ru: "Завершен", En: "Completed"},
}

var uiLabels = map[string]Label{
	"dashboard":            {Ru: "Дашборд", En: "Dashboard"},
	"clients":              {Ru: "Клиенты", En: "Clients"},
	"orders":               {Ru: "Заказы", En: "Orders"},
	"reports":              {Ru: "Отчеты", En: "Reports"},
	"orderManagement":      {Ru: "Управление заказами", En: "Order Management"},
	"orderManagementDesc":  {Ru: "Создание и управление заказами на переезд", En: "Create and manage moving orders"},
	"clientManagement":     {Ru: "Управление клиентами", En: "Client Management"},
	"clientManagementDesc": {Ru: "Просмотр и управление клиентской базой", En: "View and manage client database"},
	"createOrder":          {Ru: "Создать заказ", En: "Create Order"},
	"addClient":            {Ru: "Добавить клиента", En: "Add Client"},
	"totalOrders":          {Ru: "Всего заказов", En: "Total Orders"},
	"totalAmount":          {Ru: "Общая сумма", En: "Total Amount"},
	"lastOrder":            {Ru: "Последний заказ", En: "Last Order"},
	"vipClient":            {Ru: "VIP клиент", En: "VIP Client"},
	"client":               {Ru: "Клиент", En: "Client"},
	"dateTime":             {Ru: "Дата/Время", En: "Date/Time"},
	"status":               {Ru: "Статус", En: "Status"},
	"amount":               {Ru: "Сумма", En: "Amount"},
	"number":               {Ru: "Номер", En: "Number"},
	"name":                 {Ru: "Имя", En: "Name"},
	"phone":                {Ru: "Телефон", En: "Phone"},
	"email":                {Ru: "Email", En: "Email"},
}

// GetTranslations serves the static localization table the dashboard renders
// statuses and labels with
func GetTranslations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"statuses": statusLabels,
		"labels":   uiLabels,
	})
}
