package repo

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Skotchmaster/pitipaw_catalog/internal/models"
)

var _ Store = (*GormRepo)(nil)

type GormRepo struct {
	DB *gorm.DB
}

func NewGormRepo(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}

func (r *GormRepo) EnsureSchema(ctx context.Context) error {
	return r.DB.WithContext(ctx).AutoMigrate(&models.Product{}, &models.Admin{})
}

func (r *GormRepo) Ping(ctx context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *GormRepo) Close(context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (r *GormRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	items := make([]models.Product, 0)
	if err := r.DB.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Product{}
	}
	return items, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id models.ID) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).Where("id = ?", string(id)).First(&product).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, p *models.Product) error {
	if p.ID == "" {
		p.ID = models.ID(uuid.NewString())
	}
	return translate(r.DB.WithContext(ctx).Create(p).Error)
}

func (r *GormRepo) UpdateProduct(ctx context.Context, id models.ID, fields map[string]any) (*models.Product, error) {
	var prod models.Product
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", string(id)).First(&prod).Error; err != nil {
			return err
		}
		if len(fields) > 0 {
			if err := tx.Model(&models.Product{}).Where("id = ?", string(id)).Updates(fields).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ?", string(id)).First(&prod).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &prod, nil
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id models.ID) error {
	res := r.DB.WithContext(ctx).Where("id = ?", string(id)).Delete(&models.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepo) CountProducts(ctx context.Context) (int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// ListAdmins never loads the password column.
func (r *GormRepo) ListAdmins(ctx context.Context) ([]models.Admin, error) {
	items := make([]models.Admin, 0)
	if err := r.DB.WithContext(ctx).Select("id", "username").Find(&items).Error; err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Admin{}
	}
	return items, nil
}

func (r *GormRepo) CreateAdmin(ctx context.Context, a *models.Admin) error {
	if a.ID == "" {
		a.ID = models.ID(uuid.NewString())
	}
	return translate(r.DB.WithContext(ctx).Create(a).Error)
}

func (r *GormRepo) FindAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, translate(err)
	}
	return &admin, nil
}

func (r *GormRepo) DeleteAdmin(ctx context.Context, id models.ID) error {
	res := r.DB.WithContext(ctx).Where("id = ?", string(id)).Delete(&models.Admin{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepo) CountAdmins(ctx context.Context) (int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Admin{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "duplicate key") {
		return ErrDuplicate
	}
	return err
}
