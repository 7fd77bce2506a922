package empresa

import (
	"mi-ciec/internal/catalogo"
	"mi-ciec/internal/establecimiento"
)

// snapshotFromEntity flattens the preloaded establecimiento graph into the
// form aggregate. The UI-only parent chains (estado/municipio, seccion/
// division) are resolved separately by the snapshot loader.
func snapshotFromEntity(est *establecimiento.Establecimiento) FormData {
	form := FormData{
		RIF:                   est.RIFCompania,
		IDEstablecimiento:     est.IDEstablecimiento.String(),
		NombreEstablecimiento: est.NombreEstablecimiento,
		EmailPrincipal:        est.EmailPrincipal,
		TelefonoPrincipal1:    est.TelefonoPrincipal1,
		TelefonoPrincipal2:    est.TelefonoPrincipal2,
		FechaApertura:         est.FechaApertura,
		PersonalObrero:        est.PersonalObrero,
		PersonalEmpleado:      est.PersonalEmpleado,
		PersonalDirectivo:     est.PersonalDirectivo,
		IDDireccion:           est.IDDireccion,
		IDClaseCaev:           est.IDClaseCaev,
	}

	esNueva := false
	form.IsNewCompany = &esNueva

	if est.Compania != nil {
		form.RazonSocial = est.Compania.RazonSocial
		form.Logo = est.Compania.Logo
		form.DireccionFiscal = est.Compania.DireccionFiscal
		form.AnoFundacion = est.Compania.AnoFundacion
	}

	if est.Direccion != nil {
		p := est.Direccion.IDParroquia
		form.IDParroquia = &p
		form.DireccionDetallada = est.Direccion.DireccionDetallada
		form.Latitud = est.Direccion.Latitud
		form.Longitud = est.Direccion.Longitud
	}

	form.SelectedProducts = make([]catalogo.ProductoRef, 0, len(est.Productos))
	for _, row := range est.Productos {
		id := row.IDProducto
		ref := catalogo.ProductoRef{IDProducto: &id}
		if row.Producto != nil {
			ref.NombreProducto = row.Producto.NombreProducto
		}
		form.SelectedProducts = append(form.SelectedProducts, ref)
	}

	form.SelectedProcesses = make([]catalogo.ProcesoRef, 0, len(est.Procesos))
	for _, row := range est.Procesos {
		id := row.IDProceso
		ref := catalogo.ProcesoRef{
			IDProceso:              &id,
			PorcentajeCapacidadUso: catalogo.PorcentajeFrom(row.PorcentajeCapacidadUso),
		}
		if row.Proceso != nil {
			ref.NombreProceso = row.Proceso.NombreProceso
		}
		form.SelectedProcesses = append(form.SelectedProcesses, ref)
	}

	form.SelectedInstitutions = make([]string, 0, len(est.Afiliaciones))
	for _, af := range est.Afiliaciones {
		form.SelectedInstitutions = append(form.SelectedInstitutions, af.RIFInstitucion)
	}

	return form
}
