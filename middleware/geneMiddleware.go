package middleware

import (
	"net/http"

	"liquidbiopsy/api/contexts"
	"liquidbiopsy/api/models/constants/gene"

	"github.com/labstack/echo"
)

/*
	Echo middleware to ensure a valid `gene` HTTP query parameter was
	provided, i.e. one of the fixed oncogene panel.
*/
func MandateGeneAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.LiquidBiopsyContext)

		// check for gene query parameter
		geneQP := c.QueryParam("gene")
		if len(geneQP) == 0 {
			// if no gene was provided return an error
			return echo.NewHTTPError(http.StatusBadRequest, "Missing 'gene' query parameter for querying!")
		}

		if !gene.IsKnownGene(geneQP) {
			// if invalid gene
			return echo.NewHTTPError(http.StatusBadRequest, "Please provide a 'gene' from the panel (EGFR, KRAS, TP53, PIK3CA, BRAF)!")
		}

		gc.Gene = gene.CastToGene(geneQP)
		return next(c)
	}
}
