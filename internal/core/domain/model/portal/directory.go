// Package portal models the directory of customer supplier portals that
// logistics staff log into to book deliveries.
package portal

import (
	"errors"
	"slices"
	"strings"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

// ErrPortalFieldsAreRequired is returned when a new portal lacks any credential field.
var ErrPortalFieldsAreRequired = errs.NewValueIsRequiredError("nombre, url, usuario, contra")

// Portal is one set of credentials for a customer's web portal.
type Portal struct {
	ID       kernel.UUID
	Name     string
	URL      string
	User     string
	Password string
}

// Client groups the portals of one customer.
type Client struct {
	ID      kernel.UUID
	Name    string
	Portals []Portal
}

// Fields carries user input for creating or patching a portal. A nil field
// is absent.
type Fields struct {
	Name     *string
	URL      *string
	User     *string
	Password *string
}

func (f Fields) complete() bool {
	return f.Name != nil && f.URL != nil && f.User != nil && f.Password != nil
}

// Directory is the whole portal list. It is loaded, mutated and saved as one
// document.
type Directory struct {
	clients []Client
}

// NewDirectory wraps clients loaded from storage.
func NewDirectory(clients []Client) *Directory {
	return &Directory{clients: clients}
}

// Clients returns a deep copy of the directory in display order.
func (d *Directory) Clients() []Client {
	out := make([]Client, len(d.clients))
	for i, c := range d.clients {
		c.Portals = slices.Clone(c.Portals)
		out[i] = c
	}
	return out
}

// AddClient puts a new client first. Names are unique ignoring case.
func (d *Directory) AddClient(name string) (Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Client{}, errs.NewValueIsRequiredError("nombre")
	}
	for _, c := range d.clients {
		if strings.EqualFold(c.Name, name) {
			return Client{}, errs.NewConflictError("cliente", name)
		}
	}

	c := Client{ID: kernel.NewUUID(), Name: name, Portals: []Portal{}}
	d.clients = append([]Client{c}, d.clients...)
	return c, nil
}

// DeleteClient removes a client together with its portals.
func (d *Directory) DeleteClient(id kernel.UUID) error {
	i := d.clientIndex(id)
	if i < 0 {
		return errs.NewObjectNotFoundError("cliente", id.String())
	}
	d.clients = slices.Delete(d.clients, i, i+1)
	return nil
}

// AddPortal appends a portal to a client. Every field must be present.
func (d *Directory) AddPortal(clientID kernel.UUID, f Fields) (Portal, error) {
	if !f.complete() {
		return Portal{}, ErrPortalFieldsAreRequired
	}
	i := d.clientIndex(clientID)
	if i < 0 {
		return Portal{}, errs.NewObjectNotFoundError("cliente", clientID.String())
	}

	p := Portal{ID: kernel.NewUUID(), Name: *f.Name, URL: *f.URL, User: *f.User, Password: *f.Password}
	d.clients[i].Portals = append(d.clients[i].Portals, p)
	return p, nil
}

// UpdatePortal overwrites the present fields of a portal.
func (d *Directory) UpdatePortal(portalID kernel.UUID, f Fields) (Portal, error) {
	ci, pi := d.portalIndex(portalID)
	if ci < 0 {
		return Portal{}, errs.NewObjectNotFoundError("portal", portalID.String())
	}

	p := &d.clients[ci].Portals[pi]
	if f.Name != nil {
		p.Name = *f.Name
	}
	if f.URL != nil {
		p.URL = *f.URL
	}
	if f.User != nil {
		p.User = *f.User
	}
	if f.Password != nil {
		p.Password = *f.Password
	}
	return *p, nil
}

// DeletePortal removes a portal from whichever client owns it.
func (d *Directory) DeletePortal(portalID kernel.UUID) error {
	ci, pi := d.portalIndex(portalID)
	if ci < 0 {
		return errs.NewObjectNotFoundError("portal", portalID.String())
	}
	d.clients[ci].Portals = slices.Delete(d.clients[ci].Portals, pi, pi+1)
	return nil
}

// Validate checks ids loaded from storage.
func (d *Directory) Validate() error {
	var problems []error
	for _, c := range d.clients {
		problems = append(problems, c.ID.Validate())
		for _, p := range c.Portals {
			problems = append(problems, p.ID.Validate())
		}
	}
	return errors.Join(problems...)
}

func (d *Directory) clientIndex(id kernel.UUID) int {
	return slices.IndexFunc(d.clients, func(c Client) bool { return c.ID.IsEqual(id) })
}

func (d *Directory) portalIndex(id kernel.UUID) (int, int) {
	for ci, c := range d.clients {
		if pi := slices.IndexFunc(c.Portals, func(p Portal) bool { return p.ID.IsEqual(id) }); pi >= 0 {
			return ci, pi
		}
	}
	return -1, -1
}
