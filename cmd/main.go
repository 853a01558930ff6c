package main

import (
	"os"

	"github.com/harsha-legends/nutri-vision-sub000/config"
	"github.com/harsha-legends/nutri-vision-sub000/routes"
	"github.com/harsha-legends/nutri-vision-sub000/utils"
)

func main() {
	if err := utils.InitLogger(); err != nil {
		panic(err)
	}

	config.LoadEnv()
	config.InitDB()

	if err := utils.InitS3(); err != nil {
		utils.Sugar.Warnf("image uploads disabled: %v", err)
	}

	r := routes.SetupRouter()

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	utils.Sugar.Infof("starting server on :%s", port)
	if err := r.Run(":" + port); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
