package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/matchforge/go-match-engine/model"
)

const (
	defaultListingPageSize = 50
	maxListingPageSize     = 500
)

// AddListingsHandler adds or updates listings in a source.
// Request body: a JSON array of listings.
func (api *API) AddListingsHandler(c *gin.Context) {
	sourceName := c.Param("sourceName")

	source, err := api.engine.Source(sourceName)
	if err != nil {
		SendMappedError(c, err)
		return
	}

	var listings []model.Listing
	if err := c.ShouldBindJSON(&listings); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON, "Invalid request body: "+err.Error())
		return
	}

	if result := validateListings(listings); !result.Valid {
		SendValidationError(c, result)
		return
	}

	if err := source.AddListings(listings); err != nil {
		SendMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Listings stored successfully",
		"count":   len(listings),
		"total":   source.Count(),
	})
}

// GetListingsHandler returns one page of a source's listings.
// Query parameters: page (default 1), page_size (default 50, max 500).
func (api *API) GetListingsHandler(c *gin.Context) {
	sourceName := c.Param("sourceName")

	source, err := api.engine.Source(sourceName)
	if err != nil {
		SendMappedError(c, err)
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "Invalid page parameter")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultListingPageSize)))
	if err != nil || pageSize < 1 || pageSize > maxListingPageSize {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "Invalid page_size parameter")
		return
	}

	listings, total := source.Listings(page, pageSize)
	c.JSON(http.StatusOK, gin.H{
		"listings":  listings,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetListingHandler returns one listing by ID.
func (api *API) GetListingHandler(c *gin.Context) {
	sourceName := c.Param("sourceName")
	listingID := c.Param("listingId")

	source, err := api.engine.Source(sourceName)
	if err != nil {
		SendMappedError(c, err)
		return
	}

	found, err := source.Listing(listingID)
	if err != nil {
		SendMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, found)
}

// DeleteListingHandler removes one listing by ID.
func (api *API) DeleteListingHandler(c *gin.Context) {
	sourceName := c.Param("sourceName")
	listingID := c.Param("listingId")

	source, err := api.engine.Source(sourceName)
	if err != nil {
		SendMappedError(c, err)
		return
	}

	if err := source.DeleteListing(listingID); err != nil {
		SendMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Listing '" + listingID + "' deleted successfully"})
}

// DeleteAllListingsHandler removes every listing from a source.
func (api *API) DeleteAllListingsHandler(c *gin.Context) {
	sourceName := c.Param("sourceName")

	source, err := api.engine.Source(sourceName)
	if err != nil {
		SendMappedError(c, err)
		return
	}

	if err := source.DeleteAllListings(); err != nil {
		SendMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All listings deleted from source '" + sourceName + "'"})
}
