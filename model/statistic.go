package model

import "time"

type StatWindow struct {
	Period string    `json:"period"`
	From   time.Time `json:"from"`
	To     time.Time `json:"to"`
}

type TopItem struct {
	MenuItemId uint   `json:"menuItemId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	Revenue    int64  `json:"revenue"`
}

type SeriesPoint struct {
	Label   string    `json:"label"` // "14:00" hourly, "2006-01-02" daily
	Start   time.Time `json:"start"`
	Orders  int       `json:"orders"`
	Revenue int64     `json:"revenue"`
}

type TypeSplit struct {
	Orders  int   `json:"orders"`
	Revenue int64 `json:"revenue"`
}

type Statistics struct {
	Window        StatWindow           `json:"window"`
	OrderCount    int                  `json:"orderCount"`
	Revenue       int64                `json:"revenue"`
	PaidCount     int                  `json:"paidCount"`
	PaidRevenue   int64                `json:"paidRevenue"`
	UnpaidCount   int                  `json:"unpaidCount"`
	UnpaidRevenue int64                `json:"unpaidRevenue"`
	AverageOrder  float64              `json:"averageOrder"`
	TopItems      []TopItem            `json:"topItems"`
	StatusCounts  map[string]int       `json:"statusCounts"`
	ByType        map[string]TypeSplit `json:"byType"`
	Series        []SeriesPoint        `json:"series"`
	Orders        []Order              `json:"-"`
}

type Comparison struct {
	Previous      StatWindow `json:"previous"`
	OrderCount    int        `json:"orderCount"`
	Revenue       int64      `json:"revenue"`
	OrdersGrowth  float64    `json:"ordersGrowth"`  // %
	RevenueGrowth float64    `json:"revenueGrowth"` // %
}

type StatisticsReport struct {
	Current    Statistics `json:"current"`
	Comparison Comparison `json:"comparison"`
}

type ArchiveResult struct {
	Archived   int              `json:"archived"`
	Failed     int              `json:"failed"`
	Cutoff     time.Time        `json:"cutoff"`
	Statistics StatisticsReport `json:"statistics"`
}
