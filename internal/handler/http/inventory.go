// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-motors/internal/app"
	"github.com/MKhiriev/go-motors/internal/logger"
	"github.com/MKhiriev/go-motors/internal/validators"
	"github.com/MKhiriev/go-motors/internal/view"
	"github.com/MKhiriev/go-motors/models"
	"github.com/go-chi/chi/v5"
)

const (
	titleHome              = "Home"
	titleManagement        = "Vehicle Management"
	titleAddClassification = "Add Classification"
	titleAddInventory      = "Add Inventory"
)

var (
	addClassificationForm = formPage{name: view.PageAddClassification, title: titleAddClassification}
	addInventoryForm      = formPage{name: view.PageAddInventory, title: titleAddInventory}
)

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageHome, view.Page{Title: titleHome})
}

func (h *Handler) classification(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "classificationId")
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	classification, vehicles, err := h.services.InventoryService.GetClassificationVehicles(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, view.PageClassification, view.Page{
		Title:    classification.Name + " vehicles",
		Vehicles: vehicles,
	})
}

func (h *Handler) vehicleDetail(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "invId")
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	vehicle, err := h.services.InventoryService.GetVehicle(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, view.PageVehicleDetail, view.Page{
		Title:   vehicle.Name(),
		Vehicle: &vehicle,
	})
}

func (h *Handler) management(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageManagement, view.Page{Title: titleManagement})
}

func (h *Handler) addClassificationPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageAddClassification, view.Page{Title: titleAddClassification})
}

func (h *Handler) addClassification(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := r.PostForm.Get(validators.FieldClassificationName)

	classification, err := h.services.InventoryService.AddClassification(r.Context(), name)
	if err != nil {
		log.Err(err).Str("classification", name).Msg("error adding classification")
		h.render(w, r, http.StatusNotImplemented, view.PageAddClassification, view.Page{
			Title:   titleAddClassification,
			Notices: []string{app.MsgClassificationFailed},
			Form:    h.forms.addClassification.Echo(r.PostForm),
		})
		return
	}

	log.Info().Int64("classification_id", classification.ClassificationID).Msg("classification added")
	h.render(w, r, http.StatusCreated, view.PageManagement, view.Page{
		Title:   titleManagement,
		Notices: []string{fmt.Sprintf(app.MsgClassificationAdded, classification.Name)},
	})
}

func (h *Handler) addInventoryPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageAddInventory, view.Page{Title: titleAddInventory})
}

func (h *Handler) addInventory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	vehicle, err := vehicleFromForm(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	added, err := h.services.InventoryService.AddVehicle(r.Context(), vehicle)
	if err != nil {
		log.Err(err).Str("make", vehicle.Make).Str("model", vehicle.Model).Msg("error adding vehicle")
		h.render(w, r, http.StatusNotImplemented, view.PageAddInventory, view.Page{
			Title:   titleAddInventory,
			Notices: []string{app.MsgVehicleFailed},
			Form:    h.forms.addInventory.Echo(r.PostForm),
		})
		return
	}

	log.Info().Int64("inv_id", added.InvID).Msg("vehicle added")
	h.render(w, r, http.StatusCreated, view.PageManagement, view.Page{
		Title:   titleManagement,
		Notices: []string{fmt.Sprintf(app.MsgVehicleAdded, vehicle.Make, vehicle.Model)},
	})
}

// vehicleFromForm reads an already validated add-inventory form.
func vehicleFromForm(r *http.Request) (models.Vehicle, error) {
	form := r.PostForm

	classificationID, err := strconv.ParseInt(form.Get(validators.FieldClassificationID), 10, 64)
	if err != nil {
		return models.Vehicle{}, fmt.Errorf("%w: %s: %w", errInvalidForm, validators.FieldClassificationID, err)
	}
	year, err := strconv.Atoi(form.Get(validators.FieldYear))
	if err != nil {
		return models.Vehicle{}, fmt.Errorf("%w: %s: %w", errInvalidForm, validators.FieldYear, err)
	}
	price, err := strconv.ParseFloat(form.Get(validators.FieldPrice), 64)
	if err != nil {
		return models.Vehicle{}, fmt.Errorf("%w: %s: %w", errInvalidForm, validators.FieldPrice, err)
	}
	miles, err := strconv.Atoi(form.Get(validators.FieldMiles))
	if err != nil {
		return models.Vehicle{}, fmt.Errorf("%w: %s: %w", errInvalidForm, validators.FieldMiles, err)
	}

	return models.Vehicle{
		ClassificationID: classificationID,
		Make:             form.Get(validators.FieldMake),
		Model:            form.Get(validators.FieldModel),
		Year:             year,
		Description:      form.Get(validators.FieldDescription),
		Image:            form.Get(validators.FieldImage),
		Thumbnail:        form.Get(validators.FieldThumbnail),
		Price:            price,
		Miles:            miles,
		Color:            form.Get(validators.FieldColor),
	}, nil
}

func pathID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", errInvalidID, param, chi.URLParam(r, param))
	}
	return id, nil
}
