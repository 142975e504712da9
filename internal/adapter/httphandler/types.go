package httphandler

import "time"

type (
	Product struct {
		ProductID   int64     `json:"product_id"`
		ProductName string    `json:"product_name"`
		Cost        float64   `json:"cost"`
		Quantity    int       `json:"quantity"`
		AddedDate   time.Time `json:"added_date"`
	}

	ProductPayload struct {
		ProductName string  `json:"product_name"`
		Cost        float64 `json:"cost"`
		Quantity    int     `json:"quantity"`
	}

	TotalSales struct {
		TotalSales float64 `json:"total_sales"`
	}

	Message struct {
		Message string `json:"message"`
	}
)
