package models

// OrderLog maps to the `order_logs` audit table. One row per order the
// gateway accepted; written asynchronously after the response is served.
type OrderLog struct {
	ID          uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RequestID   string `gorm:"column:request_id;size:100" json:"request_id"`
	OrderNumber string `gorm:"column:order_number;size:200" json:"order_number"`
	PayProID    string `gorm:"column:paypro_id;size:200" json:"paypro_id"`
	Amount      string `gorm:"column:amount;size:100" json:"amount"`
	Currency    string `gorm:"column:currency;size:20" json:"currency"`
	Status      string `gorm:"column:status;size:100" json:"status"`
	IP          string `gorm:"column:ip;size:200" json:"ip"`
	Raw         string `gorm:"column:raw;type:json" json:"raw"`
	Time        string `gorm:"column:time;size:200" json:"time"`
}

func (OrderLog) TableName() string {
	return "order_logs"
}
