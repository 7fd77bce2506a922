package empresa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mi-ciec/internal/caev"
	"mi-ciec/internal/catalogo"
	"mi-ciec/internal/compania"
	"mi-ciec/internal/direccion"
	empresaerrors "mi-ciec/internal/empresa/errors"
	"mi-ciec/internal/establecimiento"
	"mi-ciec/internal/events"
	"mi-ciec/internal/messaging/kafka"
	"mi-ciec/internal/shared/apperror"
	"mi-ciec/internal/shared/blobstore"
	"mi-ciec/internal/shared/contextutil"
	"mi-ciec/internal/ubicacion"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const LogoBucket = "logos"

// Service is the draft lifecycle plus the reconciliation engine: it takes
// the flat form aggregate and issues the ordered store writes that realize
// it. The store gives no cross-table transaction, so the create path carries
// its own compensation and the update path accepts partial application.
//
//go:generate mockgen -source=empresa_service.go -destination=mock/empresa_service_mock.go -package=mock
type Service interface {
	Draft() DraftSnapshot
	UpdateDraft(ctx context.Context, form FormData) (DraftSnapshot, error)
	StageLogo(data []byte, contentType string, preview string) error
	ClearLogo() error
	SaveDraft(ctx context.Context) error
	SubmitEdit(ctx context.Context, req EditRequest) error
	RequestDiscard() (DraftSnapshot, error)
	ConfirmDiscard() (DraftSnapshot, error)
	CancelDiscard() (DraftSnapshot, error)
	OpenDrawer() DraftSnapshot
	CloseDrawer() DraftSnapshot
	SetActivePath(path string) DraftSnapshot
	LoadSnapshot(ctx context.Context, id string) (*FormData, error)
}

type service struct {
	drafts           *DraftStore
	companias        compania.Repository
	direcciones      direccion.Repository
	establecimientos establecimiento.Repository
	lecturas         establecimiento.Service
	catalogos        catalogo.Service
	ubicaciones      ubicacion.Repository
	clasificacion    caev.Repository
	blobs            blobstore.Uploader
	outbox           kafka.OutboxRepository
	logger           *zap.Logger
}

func NewService(
	drafts *DraftStore,
	companias compania.Repository,
	direcciones direccion.Repository,
	establecimientos establecimiento.Repository,
	lecturas establecimiento.Service,
	catalogos catalogo.Service,
	ubicaciones ubicacion.Repository,
	clasificacion caev.Repository,
	blobs blobstore.Uploader,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("empresa.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("empresa.service")
	}
	return &service{
		drafts:           drafts,
		companias:        companias,
		direcciones:      direcciones,
		establecimientos: establecimientos,
		lecturas:         lecturas,
		catalogos:        catalogos,
		ubicaciones:      ubicaciones,
		clasificacion:    clasificacion,
		blobs:            blobs,
		outbox:           outbox,
		logger:           l,
	}
}

func (s *service) Draft() DraftSnapshot {
	return s.drafts.Snapshot()
}

// UpdateDraft replaces the form, cascading the selection chains: changing a
// parent level (estado, municipio, seccion, division) nulls its children.
func (s *service) UpdateDraft(ctx context.Context, form FormData) (DraftSnapshot, error) {
	prev := s.drafts.Form()
	applyCascadeResets(prev, &form)
	if err := s.drafts.SetForm(form); err != nil {
		return DraftSnapshot{}, err
	}
	return s.drafts.Snapshot(), nil
}

func (s *service) StageLogo(data []byte, contentType string, preview string) error {
	return s.drafts.StageLogo(data, contentType, preview)
}

func (s *service) ClearLogo() error {
	return s.drafts.ClearLogo()
}

// SaveDraft runs the create path. The draft is cleared only on full success;
// any failure leaves it dirty so the user can correct and resubmit.
func (s *service) SaveDraft(ctx context.Context) error {
	draft, err := s.drafts.BeginSubmit()
	if err != nil {
		return err
	}

	err = s.create(ctx, draft)
	s.drafts.FinishSubmit(err == nil)
	if err != nil {
		s.logger.Error("create save failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("rif", draft.Form.RIF),
			zap.Error(err),
		)
	}
	return err
}

func (s *service) create(ctx context.Context, draft Draft) error {
	form := draft.Form
	if err := validateCreate(form); err != nil {
		return err
	}

	// 1. Logo upload, sequential: every later write may reference the URL.
	logo := form.Logo
	if len(draft.LogoData) > 0 {
		key := fmt.Sprintf("%s-%d", form.RIF, time.Now().UnixMilli())
		url, err := s.blobs.Upload(ctx, LogoBucket, key, draft.LogoData, draft.LogoContentType)
		if err != nil {
			return apperror.Dependency(err, "Error subiendo el logo: "+err.Error())
		}
		logo = &url
	}

	// 2. Catalog materialization before any junction row exists on paper.
	idsProducto, err := s.catalogos.ResolveProductos(ctx, form.SelectedProducts)
	if err != nil {
		return err
	}
	procesos, err := s.catalogos.ResolveProcesos(ctx, form.SelectedProcesses)
	if err != nil {
		return err
	}

	// 3. Company insert only for a RIF the verification step reported absent.
	if form.IsNewCompany != nil && *form.IsNewCompany {
		comp := &compania.Compania{
			RIF:             form.RIF,
			RazonSocial:     form.RazonSocial,
			Logo:            logo,
			DireccionFiscal: form.DireccionFiscal,
			AnoFundacion:    form.AnoFundacion,
		}
		if err := s.companias.Create(ctx, comp); err != nil {
			return apperror.Dependency(err, "Error creando la compania: "+err.Error())
		}
	}

	// 4. Address first, to obtain the generated id.
	dir := &direccion.Direccion{
		IDParroquia:        *form.IDParroquia,
		DireccionDetallada: form.DireccionDetallada,
		Latitud:            form.Latitud,
		Longitud:           form.Longitud,
	}
	if err := s.direcciones.Create(ctx, dir); err != nil {
		return apperror.Dependency(err, "Error creando la direccion: "+err.Error())
	}

	// 5. Establishment insert; on failure the address is orphaned, so it is
	// deleted by hand. A success without a generated id counts as failure.
	est := &establecimiento.Establecimiento{
		RIFCompania:           form.RIF,
		NombreEstablecimiento: form.NombreEstablecimiento,
		IDDireccion:           &dir.IDDireccion,
		IDClaseCaev:           form.IDClaseCaev,
		EmailPrincipal:        form.EmailPrincipal,
		TelefonoPrincipal1:    form.TelefonoPrincipal1,
		TelefonoPrincipal2:    form.TelefonoPrincipal2,
		FechaApertura:         form.FechaApertura,
		PersonalObrero:        form.PersonalObrero,
		PersonalEmpleado:      form.PersonalEmpleado,
		PersonalDirectivo:     form.PersonalDirectivo,
	}
	err = s.establecimientos.Create(ctx, est)
	if err == nil && est.IDEstablecimiento == uuid.Nil {
		err = errors.New("insert devolvio un establecimiento sin identificador")
	}
	if err != nil {
		if derr := s.direcciones.Delete(ctx, dir.IDDireccion); derr != nil {
			s.logger.Error("compensating direccion delete failed",
				zap.String("request_id", contextutil.GetRequestID(ctx)),
				zap.Int64("id_direccion", dir.IDDireccion),
				zap.Error(derr),
			)
		}
		return apperror.Dependency(err, "Error creando el establecimiento: "+err.Error())
	}

	// 6. Three independent junction batches; empty ones issue no call.
	g, gctx := errgroup.WithContext(ctx)

	if ids := dedupeInt64(idsProducto); len(ids) > 0 {
		rows := make([]establecimiento.EstablecimientoProducto, 0, len(ids))
		for _, id := range ids {
			rows = append(rows, establecimiento.EstablecimientoProducto{
				IDEstablecimiento: est.IDEstablecimiento,
				IDProducto:        id,
			})
		}
		g.Go(func() error {
			if err := s.establecimientos.BulkInsertProductos(gctx, rows); err != nil {
				return apperror.Dependency(err, "Error vinculando productos: "+err.Error())
			}
			return nil
		})
	}

	if rows := procesoRows(est.IDEstablecimiento, procesos); len(rows) > 0 {
		g.Go(func() error {
			if err := s.establecimientos.BulkInsertProcesos(gctx, rows); err != nil {
				return apperror.Dependency(err, "Error vinculando procesos: "+err.Error())
			}
			return nil
		})
	}

	if rifs := dedupeString(form.SelectedInstitutions); len(rifs) > 0 {
		rows := make([]establecimiento.Afiliacion, 0, len(rifs))
		for _, rif := range rifs {
			rows = append(rows, establecimiento.Afiliacion{
				IDEstablecimiento: est.IDEstablecimiento,
				RIFInstitucion:    rif,
			})
		}
		g.Go(func() error {
			if err := s.establecimientos.BulkInsertAfiliaciones(gctx, rows); err != nil {
				return apperror.Dependency(err, "Error vinculando gremios: "+err.Error())
			}
			return nil
		})
	}

	// 7. Aggregate verdict: first junction error wins, no compensation for
	// batches that already landed.
	if err := g.Wait(); err != nil {
		return err
	}

	s.publishLifecycle(ctx, events.EstablecimientoCreated, est.IDEstablecimiento.String(), est.RIFCompania)
	s.lecturas.InvalidateOptions(ctx)
	return nil
}

// SubmitEdit runs the update path against the load-time snapshot. The emitted
// operations run concurrently; a failure reports the first error and leaves
// whatever already landed in place.
func (s *service) SubmitEdit(ctx context.Context, req EditRequest) error {
	cur, orig := req.Current, req.Original
	if cur.RazonSocial == "" {
		return apperror.RequiredField("razon_social")
	}
	if cur.RIF == "" {
		return apperror.RequiredField("rif")
	}
	estID, err := uuid.Parse(cur.IDEstablecimiento)
	if err != nil {
		return empresaerrors.ErrEstablecimientoSinID
	}
	if (cur.Latitud == nil) != (cur.Longitud == nil) {
		return direccion.ErrPartialCoordinates
	}

	// 1. Logo: staged file replaces, cleared preview over an existing logo
	// deletes, anything else keeps the snapshot value.
	logo := orig.Logo
	if len(req.LogoData) > 0 {
		key := fmt.Sprintf("%s-%d", cur.RIF, time.Now().UnixMilli())
		url, uerr := s.blobs.Upload(ctx, LogoBucket, key, req.LogoData, req.LogoContentType)
		if uerr != nil {
			return apperror.Dependency(uerr, "Error subiendo el logo: "+uerr.Error())
		}
		logo = &url
	} else if req.LogoPreview == nil && orig.Logo != nil {
		logo = nil
	}

	// 2. Catalog materialization, identical to the create path.
	idsProducto, err := s.catalogos.ResolveProductos(ctx, cur.SelectedProducts)
	if err != nil {
		return err
	}
	procesos, err := s.catalogos.ResolveProcesos(ctx, cur.SelectedProcesses)
	if err != nil {
		return err
	}

	addProd, remProd := diffIDSet(dedupeInt64(idsProducto), resolvedProductIDs(orig.SelectedProducts))
	addProc, remProc, updProc := diffProcesos(procesos, orig.SelectedProcesses)
	addAf, remAf := diffRIFSet(cur.SelectedInstitutions, orig.SelectedInstitutions)

	// 3–5. Table updates and junction diffs as one concurrent batch.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		fields := map[string]interface{}{
			"razon_social":     cur.RazonSocial,
			"logo":             logo,
			"direccion_fiscal": cur.DireccionFiscal,
			"ano_fundacion":    cur.AnoFundacion,
		}
		if err := s.companias.UpdateFields(gctx, cur.RIF, fields); err != nil {
			return apperror.Dependency(err, "Error actualizando compania: "+err.Error())
		}
		return nil
	})

	if cur.IDDireccion != nil && cur.IDParroquia != nil {
		g.Go(func() error {
			dir := &direccion.Direccion{
				IDDireccion:        *cur.IDDireccion,
				IDParroquia:        *cur.IDParroquia,
				DireccionDetallada: cur.DireccionDetallada,
				Latitud:            cur.Latitud,
				Longitud:           cur.Longitud,
			}
			if err := s.direcciones.Update(gctx, dir); err != nil {
				return apperror.Dependency(err, "Error actualizando direccion: "+err.Error())
			}
			return nil
		})
	}

	g.Go(func() error {
		fields := map[string]interface{}{
			"nombre_establecimiento": cur.NombreEstablecimiento,
			"id_clase_caev":          cur.IDClaseCaev,
			"email_principal":        cur.EmailPrincipal,
			"telefono_principal_1":   cur.TelefonoPrincipal1,
			"telefono_principal_2":   cur.TelefonoPrincipal2,
			"fecha_apertura":         cur.FechaApertura,
			"personal_obrero":        cur.PersonalObrero,
			"personal_empleado":      cur.PersonalEmpleado,
			"personal_directivo":     cur.PersonalDirectivo,
		}
		if err := s.establecimientos.UpdateFields(gctx, estID, fields); err != nil {
			return apperror.Dependency(err, "Error actualizando establecimiento: "+err.Error())
		}
		return nil
	})

	if len(addProd) > 0 {
		rows := make([]establecimiento.EstablecimientoProducto, 0, len(addProd))
		for _, id := range addProd {
			rows = append(rows, establecimiento.EstablecimientoProducto{
				IDEstablecimiento: estID,
				IDProducto:        id,
			})
		}
		g.Go(func() error {
			if err := s.establecimientos.BulkInsertProductos(gctx, rows); err != nil {
				return apperror.Dependency(err, "Error vinculando productos: "+err.Error())
			}
			return nil
		})
	}
	if len(remProd) > 0 {
		g.Go(func() error {
			if err := s.establecimientos.BulkDeleteProductos(gctx, estID, remProd); err != nil {
				return apperror.Dependency(err, "Error desvinculando productos: "+err.Error())
			}
			return nil
		})
	}

	if rows := procesoRows(estID, addProc); len(rows) > 0 {
		g.Go(func() error {
			if err := s.establecimientos.BulkInsertProcesos(gctx, rows); err != nil {
				return apperror.Dependency(err, "Error vinculando procesos: "+err.Error())
			}
			return nil
		})
	}
	if len(remProc) > 0 {
		g.Go(func() error {
			if err := s.establecimientos.BulkDeleteProcesos(gctx, estID, remProc); err != nil {
				return apperror.Dependency(err, "Error desvinculando procesos: "+err.Error())
			}
			return nil
		})
	}
	for _, upd := range updProc {
		upd := upd
		g.Go(func() error {
			if err := s.establecimientos.UpdateProcesoPorcentaje(gctx, estID, upd.IDProceso, upd.Porcentaje); err != nil {
				return apperror.Dependency(err, "Error actualizando porcentaje de proceso: "+err.Error())
			}
			return nil
		})
	}

	if len(addAf) > 0 {
		rows := make([]establecimiento.Afiliacion, 0, len(addAf))
		for _, rif := range addAf {
			rows = append(rows, establecimiento.Afiliacion{
				IDEstablecimiento: estID,
				RIFInstitucion:    rif,
			})
		}
		g.Go(func() error {
			if err := s.establecimientos.BulkInsertAfiliaciones(gctx, rows); err != nil {
				return apperror.Dependency(err, "Error vinculando gremios: "+err.Error())
			}
			return nil
		})
	}
	if len(remAf) > 0 {
		g.Go(func() error {
			if err := s.establecimientos.BulkDeleteAfiliaciones(gctx, estID, remAf); err != nil {
				return apperror.Dependency(err, "Error desvinculando gremios: "+err.Error())
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error("edit save failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("id_establecimiento", cur.IDEstablecimiento),
			zap.Error(err),
		)
		return err
	}

	s.lecturas.InvalidateOptions(ctx)
	return nil
}

func (s *service) RequestDiscard() (DraftSnapshot, error) {
	if _, err := s.drafts.RequestDiscard(); err != nil {
		return DraftSnapshot{}, err
	}
	return s.drafts.Snapshot(), nil
}

func (s *service) ConfirmDiscard() (DraftSnapshot, error) {
	if err := s.drafts.ConfirmDiscard(); err != nil {
		return DraftSnapshot{}, err
	}
	return s.drafts.Snapshot(), nil
}

func (s *service) CancelDiscard() (DraftSnapshot, error) {
	if err := s.drafts.CancelDiscard(); err != nil {
		return DraftSnapshot{}, err
	}
	return s.drafts.Snapshot(), nil
}

func (s *service) OpenDrawer() DraftSnapshot {
	s.drafts.OpenDrawer()
	return s.drafts.Snapshot()
}

func (s *service) CloseDrawer() DraftSnapshot {
	s.drafts.CloseDrawer()
	return s.drafts.Snapshot()
}

func (s *service) SetActivePath(path string) DraftSnapshot {
	s.drafts.SetActivePath(path)
	return s.drafts.Snapshot()
}

// LoadSnapshot assembles the edit-session baseline from the normalized rows.
// The UI-only parent chains are backfilled best-effort: a missing reference
// row degrades the dropdowns, not the edit.
func (s *service) LoadSnapshot(ctx context.Context, id string) (*FormData, error) {
	est, err := s.lecturas.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	form := snapshotFromEntity(est)

	if form.IDParroquia != nil {
		if parroquia, perr := s.ubicaciones.GetParroquiaByID(ctx, *form.IDParroquia); perr == nil {
			m := parroquia.IDMunicipio
			form.IDMunicipio = &m
			if municipio, merr := s.ubicaciones.GetMunicipioByID(ctx, m); merr == nil {
				e := municipio.IDEstado
				form.IDEstado = &e
			}
		} else {
			s.logger.Warn("parroquia chain lookup failed",
				zap.Int("id_parroquia", *form.IDParroquia),
				zap.Error(perr),
			)
		}
	}

	if form.IDClaseCaev != nil {
		if clase, cerr := s.clasificacion.GetClaseByID(ctx, *form.IDClaseCaev); cerr == nil {
			d := clase.IDDivision
			form.IDDivision = &d
			if division, derr := s.clasificacion.GetDivisionByID(ctx, d); derr == nil {
				sec := division.IDSeccion
				form.IDSeccion = &sec
			}
		} else {
			s.logger.Warn("caev chain lookup failed",
				zap.String("id_clase", *form.IDClaseCaev),
				zap.Error(cerr),
			)
		}
	}

	return &form, nil
}

func (s *service) publishLifecycle(ctx context.Context, eventType, id, rif string) {
	if s.outbox == nil {
		return
	}

	payload, err := json.Marshal(events.EstablecimientoLifecycleEvent{
		EventType:         eventType,
		IDEstablecimiento: id,
		RIFCompania:       rif,
		OccurredAt:        time.Now().UTC(),
	})
	if err != nil {
		return
	}

	event := kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "establecimiento",
		AggregateID:   id,
		EventType:     eventType,
		Topic:         events.EstablecimientoLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := s.outbox.Create(ctx, event); err != nil {
		s.logger.Warn("outbox write failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}

func validateCreate(form FormData) error {
	if form.RazonSocial == "" {
		return apperror.RequiredField("razon_social")
	}
	if form.RIF == "" {
		return apperror.RequiredField("rif")
	}
	if form.NombreEstablecimiento == "" {
		return apperror.RequiredField("nombre_establecimiento")
	}
	if form.IDParroquia == nil {
		return apperror.RequiredField("id_parroquia")
	}
	if (form.Latitud == nil) != (form.Longitud == nil) {
		return direccion.ErrPartialCoordinates
	}
	return nil
}

// applyCascadeResets nulls child selections whenever a parent level of the
// ubicacion or CAEV chain changes.
func applyCascadeResets(prev FormData, next *FormData) {
	if !intPtrEqual(prev.IDEstado, next.IDEstado) {
		next.IDMunicipio = nil
		next.IDParroquia = nil
	} else if !intPtrEqual(prev.IDMunicipio, next.IDMunicipio) {
		next.IDParroquia = nil
	}

	if !strPtrEqual(prev.IDSeccion, next.IDSeccion) {
		next.IDDivision = nil
		next.IDClaseCaev = nil
	} else if !strPtrEqual(prev.IDDivision, next.IDDivision) {
		next.IDClaseCaev = nil
	}
}

func procesoRows(id uuid.UUID, refs []catalogo.ProcesoRef) []establecimiento.EstablecimientoProceso {
	rows := make([]establecimiento.EstablecimientoProceso, 0, len(refs))
	seen := make(map[int64]bool, len(refs))
	for _, ref := range refs {
		if ref.IDProceso == nil || seen[*ref.IDProceso] {
			continue
		}
		seen[*ref.IDProceso] = true
		rows = append(rows, establecimiento.EstablecimientoProceso{
			IDEstablecimiento:      id,
			IDProceso:              *ref.IDProceso,
			PorcentajeCapacidadUso: ref.PorcentajeCapacidadUso.Value(),
		})
	}
	return rows
}

func dedupeInt64(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func dedupeString(vals []string) []string {
	seen := make(map[string]bool, len(vals))
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
