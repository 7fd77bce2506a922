package catalogo

// Open-ended catalogs. Productos and procesos can be created on the fly
// while saving an establishment; servicios are managed from the gremio form.

type Producto struct {
	IDProducto     int64  `gorm:"primaryKey;autoIncrement" json:"id_producto"`
	NombreProducto string `gorm:"type:varchar(255);not null" json:"nombre_producto"`
}

func (Producto) TableName() string {
	return "productos"
}

type ProcesoProductivo struct {
	IDProceso     int64   `gorm:"primaryKey;autoIncrement" json:"id_proceso"`
	NombreProceso string  `gorm:"type:varchar(255);not null" json:"nombre_proceso"`
	Descripcion   *string `gorm:"type:text" json:"descripcion"`
}

func (ProcesoProductivo) TableName() string {
	return "procesos_productivos"
}

type Servicio struct {
	IDServicio     int64  `gorm:"primaryKey;autoIncrement" json:"id_servicio"`
	NombreServicio string `gorm:"type:varchar(255);not null" json:"nombre_servicio"`
}

func (Servicio) TableName() string {
	return "servicios"
}
