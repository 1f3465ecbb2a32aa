// Package awardrepo provides data transfer objects and mapping functions for
// award persistence. This package implements the repository pattern for the
// award aggregate: lookup keys and lifecycle state are mapped to indexed
// columns while the rest of the aggregate is serialized into a jsonb body.
package awardrepo

import (
	"encoding/json"
	"time"

	"evaluation/internal/core/domain/model/award"
	"evaluation/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AwardDTO represents the database structure for persisting award aggregates.
// The token is the primary key because the evaluation workflow resolves awards
// by credential; the contracting process and stage carry a composite index for
// sibling lookups, and the status columns let read queries skip the body.
type AwardDTO struct {
	Token uuid.UUID `gorm:"type:uuid;primaryKey"`

	ID    uuid.UUID `gorm:"type:uuid;index"`
	CpID  string    `gorm:"index:idx_awards_contract"`
	Stage string    `gorm:"index:idx_awards_contract"`
	Owner string

	Status        string
	StatusDetails string

	Body []byte `gorm:"type:jsonb"`
}

// TableName specifies the database table name for award entities.
// Overrides GORM's default naming convention to use "awards".
func (AwardDTO) TableName() string {
	return "awards"
}

// awardBody is the serialized remainder of the aggregate. Everything the
// workflows need but queries never filter on lives here.
type awardBody struct {
	RelatedLots          []string                 `json:"relatedLots"`
	Value                moneyBody                `json:"value"`
	Suppliers            []supplierBody           `json:"suppliers"`
	Documents            []documentBody           `json:"documents,omitempty"`
	RequirementResponses []requirementRspnsBody   `json:"requirementResponses,omitempty"`
	Description          string                   `json:"description,omitempty"`
	Date                 time.Time                `json:"date"`
}

type moneyBody struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type identifierBody struct {
	Scheme    string `json:"scheme"`
	ID        string `json:"id"`
	LegalName string `json:"legalName,omitempty"`
	URI       string `json:"uri,omitempty"`
}

type addressBody struct {
	StreetAddress string `json:"streetAddress,omitempty"`
	Locality      string `json:"locality,omitempty"`
	Region        string `json:"region,omitempty"`
	PostalCode    string `json:"postalCode,omitempty"`
	CountryName   string `json:"countryName,omitempty"`
}

type contactPointBody struct {
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Telephone string `json:"telephone,omitempty"`
	FaxNumber string `json:"faxNumber,omitempty"`
	URL       string `json:"url,omitempty"`
}

type supplierBody struct {
	ID                    string           `json:"id"`
	Name                  string           `json:"name"`
	Identifier            identifierBody   `json:"identifier"`
	AdditionalIdentifiers []identifierBody `json:"additionalIdentifiers,omitempty"`
	Address               addressBody      `json:"address"`
	ContactPoint          contactPointBody `json:"contactPoint"`
	Scale                 string           `json:"scale"`
}

type documentBody struct {
	ID           string   `json:"id"`
	DocumentType string   `json:"documentType,omitempty"`
	Title        string   `json:"title,omitempty"`
	Description  string   `json:"description,omitempty"`
	RelatedLots  []string `json:"relatedLots,omitempty"`
}

type organizationRefBody struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type responderBody struct {
	Name       string         `json:"name"`
	Identifier identifierBody `json:"identifier"`
}

type requirementRspnsBody struct {
	ID              string              `json:"id"`
	Title           string              `json:"title,omitempty"`
	Description     string              `json:"description,omitempty"`
	Value           string              `json:"value"`
	RequirementID   string              `json:"requirementId"`
	RelatedTenderer organizationRefBody `json:"relatedTenderer"`
	Responder       responderBody       `json:"responder"`
}

// fromDomain converts an award aggregate to its database representation.
func fromDomain(a *award.Award) (AwardDTO, error) {
	body := awardBody{
		RelatedLots: a.RelatedLots(),
		Value: moneyBody{
			Amount:   a.Value().Amount(),
			Currency: a.Value().Currency(),
		},
		Suppliers:            suppliersFromDomain(a.Suppliers()),
		Documents:            documentsFromDomain(a.Documents()),
		RequirementResponses: responsesFromDomain(a.RequirementResponses()),
		Description:          a.Description(),
		Date:                 a.Date(),
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return AwardDTO{}, err
	}

	return AwardDTO{
		Token:         a.Token().Bytes(),
		ID:            a.ID().Bytes(),
		CpID:          a.ContractID(),
		Stage:         a.Stage(),
		Owner:         a.Owner(),
		Status:        a.Status().String(),
		StatusDetails: a.StatusDetails().String(),
		Body:          raw,
	}, nil
}

// toDomain converts a database DTO to an award aggregate using RestoreAward.
func toDomain(dto AwardDTO) (*award.Award, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	token, err := kernel.UUIDFromBytes(dto.Token[:])
	if err != nil {
		return nil, err
	}

	var body awardBody
	if err = json.Unmarshal(dto.Body, &body); err != nil {
		return nil, err
	}

	value, err := kernel.NewMoney(body.Value.Amount, body.Value.Currency)
	if err != nil {
		return nil, err
	}

	return award.RestoreAward(
		id,
		token,
		dto.CpID,
		dto.Stage,
		dto.Owner,
		award.StatusFromString(dto.Status),
		award.StatusDetailsFromString(dto.StatusDetails),
		body.RelatedLots,
		value,
		suppliersToDomain(body.Suppliers),
		documentsToDomain(body.Documents),
		responsesToDomain(body.RequirementResponses),
		body.Description,
		body.Date,
	)
}

func suppliersFromDomain(suppliers []award.Supplier) []supplierBody {
	result := make([]supplierBody, 0, len(suppliers))
	for _, s := range suppliers {
		additional := make([]identifierBody, 0, len(s.AdditionalIdentifiers))
		for _, ai := range s.AdditionalIdentifiers {
			additional = append(additional, identifierFromDomain(ai))
		}

		result = append(result, supplierBody{
			ID:                    s.ID,
			Name:                  s.Name,
			Identifier:            identifierFromDomain(s.Identifier),
			AdditionalIdentifiers: additional,
			Address: addressBody{
				StreetAddress: s.Address.StreetAddress,
				Locality:      s.Address.Locality,
				Region:        s.Address.Region,
				PostalCode:    s.Address.PostalCode,
				CountryName:   s.Address.CountryName,
			},
			ContactPoint: contactPointBody{
				Name:      s.ContactPoint.Name,
				Email:     s.ContactPoint.Email,
				Telephone: s.ContactPoint.Telephone,
				FaxNumber: s.ContactPoint.FaxNumber,
				URL:       s.ContactPoint.URL,
			},
			Scale: s.Scale,
		})
	}
	return result
}

func suppliersToDomain(bodies []supplierBody) []award.Supplier {
	result := make([]award.Supplier, 0, len(bodies))
	for _, b := range bodies {
		additional := make([]award.Identifier, 0, len(b.AdditionalIdentifiers))
		for _, ai := range b.AdditionalIdentifiers {
			additional = append(additional, identifierToDomain(ai))
		}

		result = append(result, award.Supplier{
			ID:                    b.ID,
			Name:                  b.Name,
			Identifier:            identifierToDomain(b.Identifier),
			AdditionalIdentifiers: additional,
			Address: award.Address{
				StreetAddress: b.Address.StreetAddress,
				Locality:      b.Address.Locality,
				Region:        b.Address.Region,
				PostalCode:    b.Address.PostalCode,
				CountryName:   b.Address.CountryName,
			},
			ContactPoint: award.ContactPoint{
				Name:      b.ContactPoint.Name,
				Email:     b.ContactPoint.Email,
				Telephone: b.ContactPoint.Telephone,
				FaxNumber: b.ContactPoint.FaxNumber,
				URL:       b.ContactPoint.URL,
			},
			Scale: b.Scale,
		})
	}
	return result
}

func identifierFromDomain(id award.Identifier) identifierBody {
	return identifierBody{
		Scheme:    id.Scheme,
		ID:        id.ID,
		LegalName: id.LegalName,
		URI:       id.URI,
	}
}

func identifierToDomain(body identifierBody) award.Identifier {
	return award.Identifier{
		Scheme:    body.Scheme,
		ID:        body.ID,
		LegalName: body.LegalName,
		URI:       body.URI,
	}
}

func documentsFromDomain(documents []award.Document) []documentBody {
	result := make([]documentBody, 0, len(documents))
	for _, d := range documents {
		result = append(result, documentBody{
			ID:           d.ID,
			DocumentType: d.DocumentType,
			Title:        d.Title,
			Description:  d.Description,
			RelatedLots:  d.RelatedLots,
		})
	}
	return result
}

func documentsToDomain(bodies []documentBody) []award.Document {
	result := make([]award.Document, 0, len(bodies))
	for _, b := range bodies {
		result = append(result, award.Document{
			ID:           b.ID,
			DocumentType: b.DocumentType,
			Title:        b.Title,
			Description:  b.Description,
			RelatedLots:  b.RelatedLots,
		})
	}
	return result
}

func responsesFromDomain(responses []award.RequirementResponse) []requirementRspnsBody {
	result := make([]requirementRspnsBody, 0, len(responses))
	for _, r := range responses {
		result = append(result, requirementRspnsBody{
			ID:            r.ID,
			Title:         r.Title,
			Description:   r.Description,
			Value:         r.Value,
			RequirementID: r.RequirementID,
			RelatedTenderer: organizationRefBody{
				ID:   r.RelatedTenderer.ID,
				Name: r.RelatedTenderer.Name,
			},
			Responder: responderBody{
				Name:       r.Responder.Name,
				Identifier: identifierFromDomain(r.Responder.Identifier),
			},
		})
	}
	return result
}

func responsesToDomain(bodies []requirementRspnsBody) []award.RequirementResponse {
	result := make([]award.RequirementResponse, 0, len(bodies))
	for _, b := range bodies {
		result = append(result, award.RequirementResponse{
			ID:            b.ID,
			Title:         b.Title,
			Description:   b.Description,
			Value:         b.Value,
			RequirementID: b.RequirementID,
			RelatedTenderer: award.OrganizationRef{
				ID:   b.RelatedTenderer.ID,
				Name: b.RelatedTenderer.Name,
			},
			Responder: award.Responder{
				Name:       b.Responder.Name,
				Identifier: identifierToDomain(b.Responder.Identifier),
			},
		})
	}
	return result
}
