package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	purchasesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trackshop_purchases_total",
		Help: "Количество успешных покупок треков",
	})
	redemptionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trackshop_redemptions_total",
		Help: "Количество успешных скачиваний",
	})
	bonusGrantsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trackshop_bonus_grants_total",
		Help: "Количество начисленных ежедневных бонусов",
	})
)
