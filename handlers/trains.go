package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"train-reservation/services"
)

// GetTrains returns every train in the seat inventory
func GetTrains(c *gin.Context) {
	c.JSON(http.StatusOK, services.GetInventory().Trains())
}

// GetTrain returns a train's remaining seats by train number
func GetTrain(c *gin.Context) {
	number := c.Param("number")

	train, err := services.GetInventory().Train(number)
	if err != nil {
		log.Printf("Error getting train: %v", err)
		if errors.Is(err, services.ErrTrainNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Train not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve train"})
		return
	}

	c.JSON(http.StatusOK, train)
}
