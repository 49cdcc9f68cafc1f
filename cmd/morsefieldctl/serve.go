package main

import (
	"net"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/morsefield/kernel/internal/logging"
	"github.com/morsefield/kernel/internal/protocol"
)

func serveCmd() *cobra.Command {
	var listenAddr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the line-delimited JSON protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := listenAddr
			if addr == "" {
				addr = cfg.ListenAddr
			}
			log, err := logging.New(cfg.Debug)
			if err != nil {
				return err
			}
			defer log.Sync()

			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return err
			}
			defer ln.Close()
			log.Info("listening", zap.String("addr", ln.Addr().String()))

			srv := protocol.NewServer(cfg.SolverSettings(), log)
			for {
				conn, err := ln.Accept()
				if err != nil {
					log.Error("accept", zap.Error(err))
					continue
				}
				go func() {
					defer conn.Close()
					if err := srv.Serve(conn, conn); err != nil {
						log.Warn("connection closed", zap.Error(err))
					}
				}()
			}
		},
	}
	cmd.Flags().StringVar(&listenAddr, "listen", "", "TCP listen address (defaults to config listen_addr)")
	return cmd
}
