package relational

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/domain/entities"
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/usecase/interfaces"
)

// OrderRecord is the relational projection of an order document.
type OrderRecord struct {
	ID              string `gorm:"primaryKey"`
	OrderNumber     string `gorm:"not null;index"`
	CustomerName    string `gorm:"not null"`
	CustomerEmail   string `gorm:"not null"`
	CustomerPhone   string
	CustomerAddress string
	Status          string `gorm:"not null;index"`
	QRCode          string
	Total           float64
	Complexity      string
	Synced          bool `gorm:"not null;default:false;index"`
	SyncedAt        *time.Time
	ExternalID      string
	Deadline        *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Products        []ProductRecord `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Stages          []StageRecord   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderRecord) TableName() string { return "orders" }

// ProductRecord is one order line item row. Positions are kept as a single
// separator-joined column; the document store remains the richer model.
type ProductRecord struct {
	ID           uint   `gorm:"primaryKey"`
	OrderID      string `gorm:"not null;index"`
	Name         string `gorm:"not null"`
	SKU          string
	Quantity     int `gorm:"not null;check:quantity > 0"`
	Price        float64
	Color        string
	Size         string
	Positions    string
	Manufactured bool `gorm:"not null;default:false"`
	Seq          int  `gorm:"not null"`
}

func (ProductRecord) TableName() string { return "order_products" }

// StageRecord is one checklist row of an order.
type StageRecord struct {
	ID          uint   `gorm:"primaryKey"`
	OrderID     string `gorm:"not null;index"`
	StageID     string `gorm:"not null"`
	Name        string `gorm:"not null"`
	Status      string `gorm:"not null"`
	StartedAt   *time.Time
	CompletedAt *time.Time
	CompletedBy string
	Notes       string
	Seq         int `gorm:"not null"`
}

func (StageRecord) TableName() string { return "order_stages" }

const positionsSeparator = "\x1f"

// OrderGormRepository is the secondary relational order store. It satisfies
// the same port as the DynamoDB repository; exactly one of the two is wired
// as authoritative at a time (ORDER_STORE env), never both.

type OrderGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IOrderRepository = (*OrderGormRepository)(nil)

func NewOrderGormRepository(db *gorm.DB) (*OrderGormRepository, error) {
	if err := db.AutoMigrate(&OrderRecord{}, &ProductRecord{}, &StageRecord{}); err != nil {
		return nil, err
	}
	return &OrderGormRepository{db: db}, nil
}

func (r *OrderGormRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	rec := toOrderRecord(o)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	rec, err := r.load(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	return fromOrderRecord(rec), nil
}

func (r *OrderGormRepository) List(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error) {
	q := r.db.WithContext(ctx).Preload("Products").Preload("Stages").Order("created_at")
	if status != "" {
		q = q.Where("status = ?", string(status))
	}

	var recs []OrderRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	orders := make([]entities.Order, 0, len(recs))
	for _, rec := range recs {
		orders = append(orders, fromOrderRecord(rec))
	}
	return orders, nil
}

func (r *OrderGormRepository) ListUnsynced(ctx context.Context) ([]entities.Order, error) {
	var recs []OrderRecord
	err := r.db.WithContext(ctx).
		Preload("Products").Preload("Stages").
		Where("synced = ?", false).
		Order("created_at").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	orders := make([]entities.Order, 0, len(recs))
	for _, rec := range recs {
		orders = append(orders, fromOrderRecord(rec))
	}
	return orders, nil
}

func (r *OrderGormRepository) UpdateStages(ctx context.Context, id string, stages []entities.ProductionStage, status entities.OrderStatus) (entities.Order, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec OrderRecord
		if err := tx.First(&rec, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&StageRecord{}).Error; err != nil {
			return err
		}
		rows := toStageRecords(id, stages)
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return tx.Model(&OrderRecord{}).Where("id = ?", id).
			Updates(map[string]interface{}{"status": string(status), "updated_at": time.Now().UTC()}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *OrderGormRepository) SetProductManufactured(ctx context.Context, id, sku string, manufactured bool) (entities.Order, error) {
	res := r.db.WithContext(ctx).Model(&ProductRecord{}).
		Where("order_id = ? AND sku = ?", id, sku).
		Update("manufactured", manufactured)
	if res.Error != nil {
		return entities.Order{}, res.Error
	}
	return r.GetByID(ctx, id)
}

func (r *OrderGormRepository) MarkSynced(ctx context.Context, id string, externalID string) (entities.Order, error) {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).Model(&OrderRecord{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"synced":      true,
			"synced_at":   now,
			"external_id": externalID,
			"updated_at":  now,
		})
	if res.Error != nil {
		return entities.Order{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Order{}, nil
	}
	return r.GetByID(ctx, id)
}

func (r *OrderGormRepository) load(ctx context.Context, id string) (OrderRecord, error) {
	var rec OrderRecord
	err := r.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		Preload("Stages", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		First(&rec, "id = ?", id).Error
	return rec, err
}

func toOrderRecord(o entities.Order) OrderRecord {
	products := make([]ProductRecord, 0, len(o.Products))
	for i, p := range o.Products {
		products = append(products, ProductRecord{
			OrderID:      o.ID,
			Name:         p.Name,
			SKU:          p.SKU,
			Quantity:     p.Quantity,
			Price:        p.Price,
			Color:        p.Color,
			Size:         p.Size,
			Positions:    joinPositions(p.Positions),
			Manufactured: p.Manufactured,
			Seq:          i,
		})
	}
	return OrderRecord{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		CustomerName:    o.Customer.Name,
		CustomerEmail:   o.Customer.Email,
		CustomerPhone:   o.Customer.Phone,
		CustomerAddress: o.Customer.Address,
		Status:          string(o.Status),
		QRCode:          o.QRCode,
		Total:           o.Total,
		Complexity:      o.Complexity,
		Synced:          o.Synced,
		SyncedAt:        o.SyncedAt,
		ExternalID:      o.ExternalID,
		Deadline:        o.Deadline,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		Products:        products,
		Stages:          toStageRecords(o.ID, o.Stages),
	}
}

func toStageRecords(orderID string, stages []entities.ProductionStage) []StageRecord {
	rows := make([]StageRecord, 0, len(stages))
	for i, s := range stages {
		rows = append(rows, StageRecord{
			OrderID:     orderID,
			StageID:     s.ID,
			Name:        s.Name,
			Status:      string(s.Status),
			StartedAt:   s.StartedAt,
			CompletedAt: s.CompletedAt,
			CompletedBy: s.CompletedBy,
			Notes:       s.Notes,
			Seq:         i,
		})
	}
	return rows
}

func fromOrderRecord(rec OrderRecord) entities.Order {
	products := make([]entities.Product, 0, len(rec.Products))
	for _, p := range rec.Products {
		products = append(products, entities.Product{
			Name:         p.Name,
			SKU:          p.SKU,
			Quantity:     p.Quantity,
			Price:        p.Price,
			Color:        p.Color,
			Size:         p.Size,
			Positions:    splitPositions(p.Positions),
			Manufactured: p.Manufactured,
		})
	}
	stages := make([]entities.ProductionStage, 0, len(rec.Stages))
	for _, s := range rec.Stages {
		stages = append(stages, entities.ProductionStage{
			ID:          s.StageID,
			Name:        s.Name,
			Status:      entities.StageStatus(s.Status),
			StartedAt:   s.StartedAt,
			CompletedAt: s.CompletedAt,
			CompletedBy: s.CompletedBy,
			Notes:       s.Notes,
		})
	}
	return entities.Order{
		ID:          rec.ID,
		OrderNumber: rec.OrderNumber,
		Customer: entities.Customer{
			Name:    rec.CustomerName,
			Email:   rec.CustomerEmail,
			Phone:   rec.CustomerPhone,
			Address: rec.CustomerAddress,
		},
		Products:   products,
		Stages:     stages,
		Status:     entities.OrderStatus(rec.Status),
		QRCode:     rec.QRCode,
		Total:      rec.Total,
		Complexity: rec.Complexity,
		Synced:     rec.Synced,
		SyncedAt:   rec.SyncedAt,
		ExternalID: rec.ExternalID,
		Deadline:   rec.Deadline,
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}
}

func joinPositions(positions []string) string {
	return strings.Join(positions, positionsSeparator)
}

func splitPositions(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, positionsSeparator)
}
